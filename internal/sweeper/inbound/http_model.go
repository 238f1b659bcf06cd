package inbound

import (
	"net/http"

	"github.com/shandysiswandi/datasweeper/internal/sweeper/entity"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/tabular"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/usecase"
)

type CreateSessionRequest struct {
	Name string `json:"name"`
}

type Session struct {
	ID         string `json:"session_id"`
	Name       string `json:"name"`
	CreatedAt  int64  `json:"created_at"`
	LastSeenAt int64  `json:"last_seen_at"`
	FileCount  int    `json:"file_count"`
}

type CreateSessionResponse struct {
	Session
}

func (CreateSessionResponse) StatusCode() int {
	return http.StatusCreated
}

func (CreateSessionResponse) Message() string {
	return "session created"
}

type DeleteSessionResponse struct{}

func (DeleteSessionResponse) StatusCode() int {
	return http.StatusNoContent
}

type File struct {
	ID         string         `json:"file_id"`
	Name       string         `json:"name"`
	Format     tabular.Format `json:"format"`
	Size       int64          `json:"size"`
	SizeKB     float64        `json:"size_kb"`
	SizeLabel  string         `json:"size_label"`
	Rows       int            `json:"rows"`
	Columns    int            `json:"columns"`
	UploadedAt int64          `json:"uploaded_at"`
}

type Warning struct {
	FileName string             `json:"file_name"`
	Kind     entity.WarningKind `json:"kind"`
	Message  string             `json:"message"`
}

type UploadResponse struct {
	Files    []File    `json:"files"`
	Warnings []Warning `json:"warnings"`
}

func (UploadResponse) StatusCode() int {
	return http.StatusCreated
}

func (r UploadResponse) Message() string {
	if len(r.Files) == 0 {
		return "no file could be loaded"
	}
	if len(r.Warnings) > 0 {
		return "files loaded with warnings"
	}
	return "files loaded"
}

func (r UploadResponse) Meta() map[string]any {
	return map[string]any{
		"accepted": len(r.Files),
		"skipped":  len(r.Warnings),
	}
}

type ListFilesResponse struct {
	SessionID string `json:"session_id"`
	Files     []File `json:"files"`
}

type Column struct {
	Name string             `json:"name"`
	Kind tabular.ColumnKind `json:"kind"`
}

type PreviewResponse struct {
	File    File     `json:"file"`
	Columns []Column `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

type DeduplicateResponse struct {
	File        File `json:"file"`
	RowsBefore  int  `json:"rows_before"`
	RowsRemoved int  `json:"rows_removed"`
}

type FillMissingResponse struct {
	File           File               `json:"file"`
	CellsFilled    int                `json:"cells_filled"`
	Means          map[string]float64 `json:"means"`
	SkippedColumns []string           `json:"skipped_columns"`
}

type Series struct {
	Name   string     `json:"name"`
	Values []*float64 `json:"values"`
}

type ChartResponse struct {
	FileID string   `json:"file_id"`
	Rows   int      `json:"rows"`
	Series []Series `json:"series"`
}

// DownloadResponse is written as a raw attachment by the router.
type DownloadResponse struct {
	filename    string
	contentType string
	data        []byte
}

func (d DownloadResponse) Filename() string {
	return d.filename
}

func (d DownloadResponse) ContentType() string {
	return d.contentType
}

func (d DownloadResponse) Content() []byte {
	return d.data
}

func toHTTPSession(s entity.Session, fileCount int) Session {
	return Session{
		ID:         s.ID,
		Name:       s.Name,
		CreatedAt:  s.CreatedAt,
		LastSeenAt: s.LastSeenAt,
		FileCount:  fileCount,
	}
}

func toHTTPFile(f usecase.FileSummary) File {
	return File{
		ID:         f.ID,
		Name:       f.Name,
		Format:     f.Format,
		Size:       f.Size,
		SizeKB:     f.SizeKB,
		SizeLabel:  f.SizeLabel,
		Rows:       f.Rows,
		Columns:    f.Columns,
		UploadedAt: f.UploadedAt,
	}
}
