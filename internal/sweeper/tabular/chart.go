package tabular

// MaxChartSeries caps how many numeric columns are charted.
const MaxChartSeries = 2

// Series is one charted column. Points are indexed by row position; missing
// cells are nil.
type Series struct {
	Name   string
	Points []*float64
}

// ChartSeries returns the leading numeric columns of t as bar chart series.
// A table without numeric columns yields no series.
func ChartSeries(t *Table) []Series {
	out := make([]Series, 0, MaxChartSeries)
	for col := 0; col < t.NCols() && len(out) < MaxChartSeries; col++ {
		if !t.Kind(col).IsNumeric() {
			continue
		}

		c := t.Column(col)
		points := make([]*float64, len(c.Values))
		for i, v := range c.Values {
			if f, ok := number(v); ok {
				points[i] = &f
			}
		}
		out = append(out, Series{Name: c.Name, Points: points})
	}
	return out
}
