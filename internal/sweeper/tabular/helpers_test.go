package tabular

import "testing"

const salesCSV = "region,units,price,note\n" +
	"north,10,2.5,ok\n" +
	"south,,3,\n" +
	"north,10,2.5,ok\n" +
	"east,4,,late\n"

func mustParseCSV(t *testing.T, data string) *Table {
	t.Helper()
	table, err := Parse([]byte(data), FormatCSV)
	if err != nil {
		t.Fatalf("Parse() err = %v", err)
	}
	return table
}

func mustTable(t *testing.T, cols ...Column) *Table {
	t.Helper()
	table, err := NewTable(cols...)
	if err != nil {
		t.Fatalf("NewTable() err = %v", err)
	}
	return table
}
