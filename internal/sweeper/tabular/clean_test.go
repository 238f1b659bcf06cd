package tabular

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeduplicateKeepsFirstOccurrence(t *testing.T) {
	t.Parallel()

	table := mustParseCSV(t, salesCSV)
	deduped, report := Deduplicate(table)

	if report.RowsBefore != 4 || report.RowsRemoved != 1 {
		t.Fatalf("report = %+v, want 4 before / 1 removed", report)
	}
	want := [][]any{
		{"north", 10.0, 2.5, "ok"},
		{"south", nil, 3.0, nil},
		{"east", 4.0, nil, "late"},
	}
	if diff := cmp.Diff(want, deduped.Head(10)); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	if table.NRows() != 4 {
		t.Fatalf("input table mutated, rows = %d", table.NRows())
	}
}

func TestDeduplicateIsIdempotent(t *testing.T) {
	t.Parallel()

	table := mustParseCSV(t, "a,b\n1,x\n1,x\n,\n,\n2,y\n1,x\n")
	once, _ := Deduplicate(table)
	twice, report := Deduplicate(once)

	if report.RowsRemoved != 0 {
		t.Fatalf("second pass removed %d rows", report.RowsRemoved)
	}
	if diff := cmp.Diff(once.Columns(), twice.Columns()); diff != "" {
		t.Fatalf("second pass changed table (-once +twice):\n%s", diff)
	}
	if once.NRows() != 3 {
		t.Fatalf("rows after dedup = %d, want 3", once.NRows())
	}
}

func TestDeduplicateDistinguishesKinds(t *testing.T) {
	t.Parallel()

	table := mustTable(t,
		Column{Name: "n", Kind: KindNumeric, Values: []any{1.0, 1.0}},
		Column{Name: "s", Kind: KindText, Values: []any{"1", "1.0"}},
	)
	if _, report := Deduplicate(table); report.RowsRemoved != 0 {
		t.Fatalf("removed %d rows, want 0", report.RowsRemoved)
	}
}

func TestFillNumericGapsUsesMeanOfPresentValues(t *testing.T) {
	t.Parallel()

	table := mustParseCSV(t, salesCSV)
	filled, report := FillNumericGaps(table)

	if report.CellsFilled != 2 {
		t.Fatalf("CellsFilled = %d, want 2", report.CellsFilled)
	}
	wantMeans := map[string]float64{"units": 8, "price": 8.0 / 3}
	if diff := cmp.Diff(wantMeans, report.Means); diff != "" {
		t.Fatalf("Means mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{10.0, 8.0, 10.0, 4.0}, filled.Column(1).Values); diff != "" {
		t.Fatalf("units mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{2.5, 3.0, 2.5, 8.0 / 3}, filled.Column(2).Values); diff != "" {
		t.Fatalf("price mismatch (-want +got):\n%s", diff)
	}
}

func TestFillNumericGapsLeavesTextUntouched(t *testing.T) {
	t.Parallel()

	table := mustParseCSV(t, salesCSV)
	filled, _ := FillNumericGaps(table)

	for _, name := range []string{"region", "note"} {
		i, _ := table.ColumnIndex(name)
		if diff := cmp.Diff(table.Column(i), filled.Column(i)); diff != "" {
			t.Fatalf("text column %s changed (-before +after):\n%s", name, diff)
		}
	}
	if table.Value(1, 1) != nil {
		t.Fatal("input table mutated")
	}
}

func TestFillNumericGapsSkipsAllMissingColumn(t *testing.T) {
	t.Parallel()

	table := mustTable(t,
		Column{Name: "empty", Kind: KindNumeric, Values: []any{nil, nil}},
		Column{Name: "full", Kind: KindNumeric, Values: []any{1.0, 2.0}},
	)
	filled, report := FillNumericGaps(table)

	if diff := cmp.Diff([]string{"empty"}, report.Skipped); diff != "" {
		t.Fatalf("Skipped mismatch (-want +got):\n%s", diff)
	}
	if report.CellsFilled != 0 {
		t.Fatalf("CellsFilled = %d, want 0", report.CellsFilled)
	}
	if diff := cmp.Diff([]any{nil, nil}, filled.Column(0).Values); diff != "" {
		t.Fatalf("all-missing column changed (-want +got):\n%s", diff)
	}
}

func TestDeduplicateTreatsNegativeZeroAsZero(t *testing.T) {
	t.Parallel()

	table := mustParseCSV(t, "x,label\n0.0,a\n-0.0,a\n-0,a\n")
	deduped, report := Deduplicate(table)

	if report.RowsRemoved != 2 {
		t.Fatalf("removed %d rows, want 2", report.RowsRemoved)
	}
	if deduped.NRows() != 1 {
		t.Fatalf("rows after dedup = %d, want 1", deduped.NRows())
	}
}

func TestFillNumericGapsWidensIntegerColumn(t *testing.T) {
	t.Parallel()

	table := mustTable(t,
		Column{Name: "id", Kind: KindInteger, Values: []any{int64(1), int64(2)}},
		Column{Name: "n", Kind: KindInteger, Values: []any{int64(2), nil}},
	)
	filled, report := FillNumericGaps(table)

	if report.CellsFilled != 1 {
		t.Fatalf("CellsFilled = %d, want 1", report.CellsFilled)
	}
	if filled.Kind(0) != KindInteger {
		t.Fatalf("id kind = %s, want integer", filled.Kind(0))
	}
	if filled.Kind(1) != KindNumeric {
		t.Fatalf("n kind = %s, want numeric", filled.Kind(1))
	}
	if diff := cmp.Diff([]any{2.0, 2.0}, filled.Column(1).Values); diff != "" {
		t.Fatalf("n mismatch (-want +got):\n%s", diff)
	}
}
