package tabular

import (
	"strconv"
	"strings"
)

// DedupReport summarises a Deduplicate run.
type DedupReport struct {
	RowsBefore  int
	RowsRemoved int
}

// FillReport summarises a FillNumericGaps run.
type FillReport struct {
	CellsFilled int
	// Means holds the value written into each filled column.
	Means map[string]float64
	// Skipped lists numeric columns with no present value; they stay missing.
	Skipped []string
}

// Deduplicate drops every row equal to an earlier row, keeping the first
// occurrence and the original order. Missing cells equal missing cells.
func Deduplicate(t *Table) (*Table, DedupReport) {
	n := t.NRows()
	seen := make(map[string]struct{}, n)
	keep := make([]int, 0, n)

	for row := 0; row < n; row++ {
		key := rowKey(t, row)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, row)
	}

	report := DedupReport{RowsBefore: n, RowsRemoved: n - len(keep)}
	if report.RowsRemoved == 0 {
		return t, report
	}

	return t.selectRows(keep), report
}

func rowKey(t *Table, row int) string {
	var b strings.Builder
	for col := 0; col < t.NCols(); col++ {
		if col > 0 {
			b.WriteByte(0x1f)
		}
		switch v := t.Value(row, col).(type) {
		case nil:
			b.WriteString("\x00")
		case float64:
			if v == 0 {
				// -0 equals 0
				v = 0
			}
			b.WriteString("f")
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		case int64:
			b.WriteString("i")
			b.WriteString(strconv.FormatInt(v, 10))
		case string:
			b.WriteString("s")
			b.WriteString(strconv.Quote(v))
		}
	}
	return b.String()
}

// FillNumericGaps replaces missing cells of every numeric column with the mean
// of that column's present cells. Text columns are returned untouched. An
// integer column with gaps becomes a numeric column.
func FillNumericGaps(t *Table) (*Table, FillReport) {
	report := FillReport{Means: make(map[string]float64)}
	cols := t.Columns()

	for i, col := range cols {
		if !col.Kind.IsNumeric() {
			continue
		}

		var (
			sum     float64
			present int
			gaps    int
		)
		for _, v := range col.Values {
			if f, ok := number(v); ok {
				sum += f
				present++
				continue
			}
			gaps++
		}

		if gaps == 0 {
			continue
		}
		if present == 0 {
			report.Skipped = append(report.Skipped, col.Name)
			continue
		}

		mean := sum / float64(present)
		for row, v := range col.Values {
			f, ok := number(v)
			if !ok {
				f = mean
			}
			cols[i].Values[row] = f
		}
		cols[i].Kind = KindNumeric
		report.Means[col.Name] = mean
		report.CellsFilled += gaps
	}

	if report.CellsFilled == 0 {
		return t, report
	}

	filled, err := NewTable(cols...)
	if err != nil {
		// cols come from a valid table and keep their kinds and lengths
		panic(err)
	}
	return filled, report
}

// number returns a present numeric cell as a float64.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func (t *Table) selectRows(rows []int) *Table {
	cols := make([]Column, t.NCols())
	for col := range cols {
		values := make([]any, len(rows))
		for i, row := range rows {
			values[i] = t.Value(row, col)
		}
		cols[col] = Column{Name: t.df.Series[col].Name(), Kind: t.kinds[col], Values: values}
	}

	out, err := NewTable(cols...)
	if err != nil {
		panic(err)
	}
	return out
}
