package usecase

import (
	"github.com/dustin/go-humanize"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/entity"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/tabular"
)

type SessionResult struct {
	Session   entity.Session
	FileCount int
}

type FileSummary struct {
	ID         string
	Name       string
	Format     tabular.Format
	Size       int64
	SizeKB     float64
	SizeLabel  string
	Rows       int
	Columns    int
	UploadedAt int64
}

type UploadResult struct {
	Files    []FileSummary
	Warnings []entity.FileWarning
}

type ListFilesResult struct {
	SessionID string
	Files     []FileSummary
}

type ColumnInfo struct {
	Name string
	Kind tabular.ColumnKind
}

type PreviewResult struct {
	File    FileSummary
	Columns []ColumnInfo
	Rows    [][]any
}

type DeduplicateResult struct {
	File        FileSummary
	RowsBefore  int
	RowsRemoved int
}

type FillMissingResult struct {
	File        FileSummary
	CellsFilled int
	Means       map[string]float64
	Skipped     []string
}

type ChartResult struct {
	FileID string
	Rows   int
	Series []tabular.Series
}

type ConvertResult struct {
	Filename string
	MIMEType string
	Data     []byte
}

func summarize(file entity.FileRecord) FileSummary {
	s := FileSummary{
		ID:         file.ID,
		Name:       file.Name,
		Format:     file.Format,
		Size:       file.Size,
		SizeKB:     float64(file.Size) / 1024,
		SizeLabel:  humanize.IBytes(uint64(max(file.Size, 0))),
		UploadedAt: file.UploadedAt,
	}
	if file.Table != nil {
		s.Rows = file.Table.NRows()
		s.Columns = file.Table.NCols()
	}
	return s
}

func describeColumns(t *tabular.Table) []ColumnInfo {
	names := t.Names()
	out := make([]ColumnInfo, len(names))
	for i, name := range names {
		out[i] = ColumnInfo{Name: name, Kind: t.Kind(i)}
	}
	return out
}
