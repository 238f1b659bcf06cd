package entity

import (
	"testing"

	"github.com/shandysiswandi/datasweeper/internal/sweeper/tabular"
)

func TestConversionRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     ConversionRequest
		wantErr bool
	}{
		{name: "valid", req: ConversionRequest{FileID: "1", Format: tabular.FormatExcel, Columns: []string{"a"}}},
		{name: "valid without columns", req: ConversionRequest{FileID: "1", Format: tabular.FormatCSV}},
		{name: "missing file", req: ConversionRequest{Format: tabular.FormatCSV}, wantErr: true},
		{name: "missing format", req: ConversionRequest{FileID: "1"}, wantErr: true},
		{name: "unknown format", req: ConversionRequest{FileID: "1", Format: tabular.Format("json")}, wantErr: true},
		{name: "blank column", req: ConversionRequest{FileID: "1", Format: tabular.FormatCSV, Columns: []string{"a", ""}}, wantErr: true},
	}

	for _, tc := range tests {
		err := tc.req.Validate()
		if (err != nil) != tc.wantErr {
			t.Fatalf("%s: Validate() err = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}
