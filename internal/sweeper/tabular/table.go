package tabular

import (
	"fmt"

	dataframe "github.com/rocketlaunchr/dataframe-go"
)

// ColumnKind is the value type shared by every cell of a column.
type ColumnKind string

const (
	KindNumeric ColumnKind = "NUMERIC"
	KindInteger ColumnKind = "INTEGER"
	KindText    ColumnKind = "TEXT"
)

// IsNumeric reports whether cells of kind k are numbers.
func (k ColumnKind) IsNumeric() bool {
	return k == KindNumeric || k == KindInteger
}

// Column is a detached copy of one table column. Values hold float64 for
// numeric columns, int64 for integer columns, string for text columns, and nil
// for missing cells.
type Column struct {
	Name   string
	Kind   ColumnKind
	Values []any
}

// Table is an immutable, ordered set of equally long named columns backed by
// a dataframe. Operations never modify a Table in place; they build a new one.
type Table struct {
	df    *dataframe.DataFrame
	kinds []ColumnKind
	index map[string]int
}

// NewTable validates cols and builds a Table from them.
func NewTable(cols ...Column) (*Table, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}

	rows := len(cols[0].Values)
	index := make(map[string]int, len(cols))
	kinds := make([]ColumnKind, 0, len(cols))
	series := make([]dataframe.Series, 0, len(cols))

	for i, col := range cols {
		if _, dup := index[col.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col.Name)
		}
		if len(col.Values) != rows {
			return nil, fmt.Errorf("%w: %q has %d rows, want %d", ErrColumnLength, col.Name, len(col.Values), rows)
		}
		index[col.Name] = i

		s, err := newSeries(col)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, col.Kind)
		series = append(series, s)
	}

	return &Table{
		df:    dataframe.NewDataFrame(series...),
		kinds: kinds,
		index: index,
	}, nil
}

func newSeries(col Column) (dataframe.Series, error) {
	switch col.Kind {
	case KindNumeric:
		for row, v := range col.Values {
			if _, ok := v.(float64); !ok && v != nil {
				return nil, fmt.Errorf("column %q row %d: numeric cell holds %T", col.Name, row, v)
			}
		}
		return dataframe.NewSeriesFloat64(col.Name, nil, col.Values...), nil
	case KindInteger:
		for row, v := range col.Values {
			if _, ok := v.(int64); !ok && v != nil {
				return nil, fmt.Errorf("column %q row %d: integer cell holds %T", col.Name, row, v)
			}
		}
		return dataframe.NewSeriesInt64(col.Name, nil, col.Values...), nil
	case KindText:
		for row, v := range col.Values {
			if _, ok := v.(string); !ok && v != nil {
				return nil, fmt.Errorf("column %q row %d: text cell holds %T", col.Name, row, v)
			}
		}
		return dataframe.NewSeriesString(col.Name, nil, col.Values...), nil
	default:
		return nil, fmt.Errorf("column %q: unknown kind %q", col.Name, col.Kind)
	}
}

// NRows returns the shared row count.
func (t *Table) NRows() int {
	return t.df.NRows()
}

// NCols returns the number of columns.
func (t *Table) NCols() int {
	return len(t.kinds)
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.df.Series))
	for _, s := range t.df.Series {
		names = append(names, s.Name())
	}
	return names
}

// Kind returns the kind of column i.
func (t *Table) Kind(i int) ColumnKind {
	return t.kinds[i]
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Value returns the cell at row, col: float64, int64, string or nil.
func (t *Table) Value(row, col int) any {
	return t.df.Series[col].Value(row)
}

// Column returns a copy of column i.
func (t *Table) Column(i int) Column {
	n := t.NRows()
	values := make([]any, n)
	for row := 0; row < n; row++ {
		values[row] = t.Value(row, i)
	}
	return Column{
		Name:   t.df.Series[i].Name(),
		Kind:   t.kinds[i],
		Values: values,
	}
}

// Columns returns copies of every column in order.
func (t *Table) Columns() []Column {
	cols := make([]Column, 0, t.NCols())
	for i := 0; i < t.NCols(); i++ {
		cols = append(cols, t.Column(i))
	}
	return cols
}

// Row returns the cells of one row in column order.
func (t *Table) Row(row int) []any {
	cells := make([]any, t.NCols())
	for col := range cells {
		cells[col] = t.Value(row, col)
	}
	return cells
}

// Head returns up to n leading rows.
func (t *Table) Head(n int) [][]any {
	if n > t.NRows() {
		n = t.NRows()
	}
	if n < 0 {
		n = 0
	}

	rows := make([][]any, 0, n)
	for row := 0; row < n; row++ {
		rows = append(rows, t.Row(row))
	}
	return rows
}
