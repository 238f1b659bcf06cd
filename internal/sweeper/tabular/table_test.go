package tabular

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewTableValidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cols []Column
		want error
	}{
		{name: "no columns", want: ErrNoColumns},
		{
			name: "duplicate name",
			cols: []Column{
				{Name: "a", Kind: KindText, Values: []any{"x"}},
				{Name: "a", Kind: KindText, Values: []any{"y"}},
			},
			want: ErrDuplicateColumn,
		},
		{
			name: "length mismatch",
			cols: []Column{
				{Name: "a", Kind: KindNumeric, Values: []any{1.0, 2.0}},
				{Name: "b", Kind: KindNumeric, Values: []any{1.0}},
			},
			want: ErrColumnLength,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTable(tc.cols...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("NewTable() err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewTableRejectsMistypedCell(t *testing.T) {
	t.Parallel()

	_, err := NewTable(Column{Name: "n", Kind: KindNumeric, Values: []any{"one"}})
	if err == nil {
		t.Fatal("NewTable() expected error for text in numeric column")
	}
}

func TestTableAccessors(t *testing.T) {
	t.Parallel()

	table := mustTable(t,
		Column{Name: "n", Kind: KindNumeric, Values: []any{1.5, nil, 3.0}},
		Column{Name: "s", Kind: KindText, Values: []any{"a", "b", nil}},
	)

	if table.NRows() != 3 || table.NCols() != 2 {
		t.Fatalf("shape = %dx%d, want 3x2", table.NRows(), table.NCols())
	}
	if diff := cmp.Diff([]string{"n", "s"}, table.Names()); diff != "" {
		t.Fatalf("Names() mismatch (-want +got):\n%s", diff)
	}
	if got := table.Value(1, 0); got != nil {
		t.Fatalf("Value(1,0) = %v, want nil", got)
	}
	if got := table.Value(0, 1); got != "a" {
		t.Fatalf("Value(0,1) = %v, want a", got)
	}
	if i, ok := table.ColumnIndex("s"); !ok || i != 1 {
		t.Fatalf("ColumnIndex(s) = %d,%v", i, ok)
	}
	if _, ok := table.ColumnIndex("missing"); ok {
		t.Fatal("ColumnIndex(missing) should not be found")
	}

	want := [][]any{{1.5, "a"}, {nil, "b"}}
	if diff := cmp.Diff(want, table.Head(2)); diff != "" {
		t.Fatalf("Head(2) mismatch (-want +got):\n%s", diff)
	}
	if got := len(table.Head(10)); got != 3 {
		t.Fatalf("Head(10) len = %d, want 3", got)
	}
}
