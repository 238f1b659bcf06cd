package tabular

import "errors"

var (
	// ErrUnsupportedFormat is returned for file names without a .csv or .xlsx suffix.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrEmptyFile is returned when a file parses to zero data rows.
	ErrEmptyFile = errors.New("file contains no data rows")
	// ErrParse wraps malformed CSV or XLSX content.
	ErrParse = errors.New("malformed file content")

	ErrNoColumns       = errors.New("table needs at least one column")
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrColumnLength    = errors.New("columns differ in length")
)
