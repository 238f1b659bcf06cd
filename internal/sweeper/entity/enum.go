package entity

// WarningKind classifies why an uploaded file was skipped.
type WarningKind string

const (
	WarningUnsupportedFormat WarningKind = "UNSUPPORTED_FORMAT"
	WarningEmptyFile         WarningKind = "EMPTY_FILE"
	WarningParseError        WarningKind = "PARSE_ERROR"
)
