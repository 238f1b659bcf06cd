package tabular

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
)

func TestSerializeCSVRoundTrip(t *testing.T) {
	t.Parallel()

	table := mustParseCSV(t, salesCSV)
	out, err := Serialize(table, FormatCSV, "sales.csv")
	if err != nil {
		t.Fatalf("Serialize() err = %v", err)
	}

	if got := string(out.Data); got != salesCSV {
		t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, salesCSV)
	}
	if out.Filename != "sales.csv" || out.MIMEType != MIMETypeCSV {
		t.Fatalf("unexpected output meta: %q %q", out.Filename, out.MIMEType)
	}
}

func TestSerializeExcelRoundTrip(t *testing.T) {
	t.Parallel()

	table := mustParseCSV(t, salesCSV)
	out, err := Serialize(table, FormatExcel, "sales.csv")
	if err != nil {
		t.Fatalf("Serialize() err = %v", err)
	}
	if out.Filename != "sales.xlsx" || out.MIMEType != MIMETypeExcel {
		t.Fatalf("unexpected output meta: %q %q", out.Filename, out.MIMEType)
	}

	back, err := Parse(out.Data, FormatExcel)
	if err != nil {
		t.Fatalf("Parse(xlsx) err = %v", err)
	}
	if diff := cmp.Diff(table.Columns(), back.Columns()); diff != "" {
		t.Fatalf("excel round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeCleanedProjection(t *testing.T) {
	t.Parallel()

	table := mustParseCSV(t, salesCSV)
	table, _ = Deduplicate(table)
	table, _ = FillNumericGaps(table)
	table, err := Project(table, []string{"note", "units", "region"})
	if err != nil {
		t.Fatalf("Project() err = %v", err)
	}

	out, err := Serialize(table, FormatCSV, "sales.xlsx")
	if err != nil {
		t.Fatalf("Serialize() err = %v", err)
	}
	if out.Filename != "sales.csv" {
		t.Fatalf("Filename = %q", out.Filename)
	}

	g := goldie.New(t)
	g.Assert(t, "sales_cleaned_projection", out.Data)
}

func TestChartSeriesTakesFirstTwoNumericColumns(t *testing.T) {
	t.Parallel()

	table := mustTable(t,
		Column{Name: "label", Kind: KindText, Values: []any{"a", "b"}},
		Column{Name: "x", Kind: KindNumeric, Values: []any{1.0, nil}},
		Column{Name: "y", Kind: KindInteger, Values: []any{int64(2), int64(3)}},
		Column{Name: "z", Kind: KindNumeric, Values: []any{4.0, 5.0}},
	)

	series := ChartSeries(table)
	if len(series) != 2 || series[0].Name != "x" || series[1].Name != "y" {
		t.Fatalf("unexpected series: %+v", series)
	}
	if series[0].Points[1] != nil || *series[0].Points[0] != 1 {
		t.Fatalf("unexpected x points: %v", series[0].Points)
	}
	if *series[1].Points[1] != 3 {
		t.Fatalf("unexpected y points: %v", series[1].Points)
	}

	if got := ChartSeries(mustTable(t, Column{Name: "s", Kind: KindText, Values: []any{"a"}})); len(got) != 0 {
		t.Fatalf("expected no series for text-only table, got %d", len(got))
	}
}
