package tabular

import (
	"fmt"
	"slices"
)

// Project returns a table holding only the selected columns, in selection order.
func Project(t *Table, selection []string) (*Table, error) {
	if len(selection) == 0 {
		return nil, ErrNoColumns
	}

	if slices.Equal(selection, t.Names()) {
		return t, nil
	}

	cols := make([]Column, 0, len(selection))
	picked := make(map[string]struct{}, len(selection))
	for _, name := range selection {
		if _, dup := picked[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		picked[name] = struct{}{}

		i, ok := t.ColumnIndex(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		cols = append(cols, t.Column(i))
	}

	return NewTable(cols...)
}
