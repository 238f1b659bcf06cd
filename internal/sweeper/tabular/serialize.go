package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const excelSheet = "Sheet1"

// Output is a serialized table ready to be downloaded.
type Output struct {
	Filename string
	MIMEType string
	Data     []byte
}

// Serialize encodes t as target. sourceName is the uploaded file name whose
// extension is swapped for the one of target.
func Serialize(t *Table, target Format, sourceName string) (Output, error) {
	var (
		data []byte
		err  error
	)

	switch target {
	case FormatCSV:
		data, err = writeCSV(t)
	case FormatExcel:
		data, err = writeXLSX(t)
	default:
		return Output{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, target)
	}
	if err != nil {
		return Output{}, err
	}

	return Output{
		Filename: OutputName(sourceName, target),
		MIMEType: target.MIMEType(),
		Data:     data,
	}, nil
}

// FormatCell renders a cell the way it is written to CSV.
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

func writeCSV(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Names()); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, t.NCols())
	for row := 0; row < t.NRows(); row++ {
		for col := range record {
			record[col] = FormatCell(t.Value(row, col))
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", row, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func writeXLSX(t *Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sw, err := f.NewStreamWriter(excelSheet)
	if err != nil {
		return nil, fmt.Errorf("open xlsx sheet: %w", err)
	}

	header := make([]any, 0, t.NCols())
	for _, name := range t.Names() {
		header = append(header, name)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("write xlsx header: %w", err)
	}

	for row := 0; row < t.NRows(); row++ {
		cell, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, t.Row(row)); err != nil {
			return nil, fmt.Errorf("write xlsx row %d: %w", row, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("flush xlsx: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode xlsx: %w", err)
	}

	return buf.Bytes(), nil
}
