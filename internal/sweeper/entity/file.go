package entity

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/tabular"
)

// UploadedFile is one file part received from a client.
type UploadedFile struct {
	Name string
	Size int64
	Data []byte
}

// FileRecord is an accepted upload and the current state of its table.
type FileRecord struct {
	ID         string
	SessionID  string
	Name       string
	Size       int64
	Format     tabular.Format
	Table      *tabular.Table
	UploadedAt int64
}

// FileWarning reports an uploaded file that was skipped.
type FileWarning struct {
	FileName string
	Kind     WarningKind
	Message  string
}

// ConversionRequest asks for a file's table, optionally projected onto
// Columns, encoded as Format.
type ConversionRequest struct {
	FileID  string
	Format  tabular.Format
	Columns []string
}

// Validate checks the request before any table work happens.
func (r ConversionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FileID, validation.Required),
		validation.Field(&r.Format, validation.Required, validation.In(tabular.FormatCSV, tabular.FormatExcel)),
		validation.Field(&r.Columns, validation.Each(validation.Required)),
	)
}
