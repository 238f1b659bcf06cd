package tabular

import (
	"errors"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{name: "sales.csv", want: FormatCSV},
		{name: "Sales.CSV", want: FormatCSV},
		{name: "book.xlsx", want: FormatExcel},
		{name: "archive.tar.xlsx", want: FormatExcel},
		{name: "notes.txt", wantErr: true},
		{name: "legacy.xls", wantErr: true},
		{name: "README", wantErr: true},
	}

	for _, tc := range tests {
		got, err := DetectFormat(tc.name)
		if tc.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Fatalf("DetectFormat(%q) err = %v, want ErrUnsupportedFormat", tc.name, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("DetectFormat(%q) err = %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("DetectFormat(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]Format{"CSV": FormatCSV, "excel": FormatExcel, " xlsx ": FormatExcel} {
		got, err := ParseFormat(raw)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}
	if _, err := ParseFormat("json"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("ParseFormat(json) err = %v", err)
	}
}

func TestOutputNameAndMIME(t *testing.T) {
	t.Parallel()

	if got := OutputName("sales.csv", FormatExcel); got != "sales.xlsx" {
		t.Fatalf("OutputName() = %q", got)
	}
	if got := OutputName("q1.csv.backup.xlsx", FormatCSV); got != "q1.csv.backup.csv" {
		t.Fatalf("OutputName() = %q", got)
	}
	if got := FormatCSV.MIMEType(); got != "text/csv" {
		t.Fatalf("csv MIME = %q", got)
	}
	if got := FormatExcel.MIMEType(); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("excel MIME = %q", got)
	}
}
