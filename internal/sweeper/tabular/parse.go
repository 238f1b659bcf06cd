package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// missingTokens are cell texts read as missing values, in addition to "".
//
//nolint:gochecknoglobals // read-only lookup table
var missingTokens = map[string]struct{}{
	"NA": {}, "N/A": {}, "n/a": {}, "NaN": {}, "nan": {}, "-NaN": {}, "-nan": {},
	"NULL": {}, "null": {}, "None": {}, "<NA>": {},
	"#N/A": {}, "#N/A N/A": {}, "#NA": {},
	"-1.#IND": {}, "-1.#QNAN": {}, "1.#IND": {}, "1.#QNAN": {},
}

func isMissing(cell string) bool {
	if cell == "" {
		return true
	}
	_, ok := missingTokens[cell]
	return ok
}

// Parse decodes data in the given format into a Table.
//
// The first record is the header. A file with no data rows yields ErrEmptyFile,
// malformed content yields an error wrapping ErrParse.
func Parse(data []byte, format Format) (*Table, error) {
	var (
		sheet rawSheet
		err   error
	)

	switch format {
	case FormatCSV:
		sheet, err = readCSV(data)
	case FormatExcel:
		sheet, err = readXLSX(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if len(sheet.records) < 2 {
		return nil, ErrEmptyFile
	}

	return buildTable(sheet)
}

// rawSheet is a header record followed by data records of the same width.
type rawSheet struct {
	records [][]string
	// text marks columns holding cells the source typed as strings.
	text []bool
}

func readCSV(data []byte) (rawSheet, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rawSheet{}, fmt.Errorf("%w: %v", ErrParse, err)
		}

		if len(records) > 0 {
			width := len(records[0])
			if len(record) > width {
				line, _ := reader.FieldPos(0)
				return rawSheet{}, fmt.Errorf("%w: line %d: expected %d fields, saw %d", ErrParse, line, width, len(record))
			}
			record = pad(record, width)
		}
		records = append(records, record)
	}

	return rawSheet{records: records}, nil
}

func readXLSX(data []byte) (rawSheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return rawSheet{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return rawSheet{}, ErrEmptyFile
	}
	name := sheets[0]

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return rawSheet{}, fmt.Errorf("%w: sheet %q: %v", ErrParse, name, err)
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	var (
		records = make([][]string, 0, len(rows))
		text    = make([]bool, width)
	)
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if len(records) > 0 {
			if err := markTextCells(f, name, i+1, row, text); err != nil {
				return rawSheet{}, err
			}
		}
		// excelize drops trailing empty cells, so rows come back ragged
		records = append(records, pad(row, width))
	}

	return rawSheet{records: records, text: text}, nil
}

// markTextCells flags the columns of sheet row rowNum whose present cells are
// stored as shared or inline strings.
func markTextCells(f *excelize.File, sheet string, rowNum int, row []string, text []bool) error {
	for col, cell := range row {
		if text[col] || isMissing(cell) {
			continue
		}

		ref, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		typ, err := f.GetCellType(sheet, ref)
		if err != nil {
			return fmt.Errorf("%w: cell %s: %v", ErrParse, ref, err)
		}
		if typ == excelize.CellTypeSharedString || typ == excelize.CellTypeInlineString {
			text[col] = true
		}
	}
	return nil
}

func pad(record []string, width int) []string {
	if len(record) >= width {
		return record
	}
	padded := make([]string, width)
	copy(padded, record)
	return padded
}

func buildTable(sheet rawSheet) (*Table, error) {
	names := normalizeHeader(sheet.records[0])
	rows := sheet.records[1:]
	cols := make([]Column, len(names))

	for j, name := range names {
		cells := make([]string, len(rows))
		for i, row := range rows {
			cells[i] = row[j]
		}
		forceText := j < len(sheet.text) && sheet.text[j]
		cols[j] = inferColumn(name, cells, forceText)
	}

	return NewTable(cols...)
}

// normalizeHeader names blank headers "Unnamed: <i>" and suffixes repeats
// with ".1", ".2", ... so every column name is unique.
func normalizeHeader(header []string) []string {
	names := make([]string, len(header))
	used := make(map[string]struct{}, len(header))
	repeats := make(map[string]int)

	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		base := name
		for {
			if _, taken := used[name]; !taken {
				break
			}
			repeats[base]++
			name = fmt.Sprintf("%s.%d", base, repeats[base])
		}

		used[name] = struct{}{}
		names[i] = name
	}

	return names
}

// inferColumn picks the narrowest kind that holds every present cell: integer
// when no cell is missing and all parse as int64, numeric when all parse as
// finite floats, text otherwise.
func inferColumn(name string, cells []string, forceText bool) Column {
	kind := KindInteger
	if forceText {
		kind = KindText
	}

	for _, cell := range cells {
		if kind == KindText {
			break
		}
		if isMissing(cell) {
			kind = KindNumeric
			continue
		}

		trimmed := strings.TrimSpace(cell)
		if kind == KindInteger {
			if _, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
				continue
			}
			kind = KindNumeric
		}
		// non-finite values cannot be averaged or encoded as JSON
		if v, err := strconv.ParseFloat(trimmed, 64); err != nil || math.IsInf(v, 0) {
			kind = KindText
		}
	}

	values := make([]any, len(cells))
	for i, cell := range cells {
		if isMissing(cell) {
			continue
		}

		trimmed := strings.TrimSpace(cell)
		switch kind {
		case KindInteger:
			values[i], _ = strconv.ParseInt(trimmed, 10, 64)
		case KindNumeric:
			if v, _ := strconv.ParseFloat(trimmed, 64); !math.IsNaN(v) {
				values[i] = v
			}
		default:
			values[i] = cell
		}
	}

	return Column{Name: name, Kind: kind, Values: values}
}
