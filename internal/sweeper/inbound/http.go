package inbound

import (
	"context"

	"github.com/shandysiswandi/datasweeper/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/entity"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/usecase"
)

// DefaultMaxUploadBytes caps a multipart upload request when no limit is configured.
const DefaultMaxUploadBytes int64 = 32 << 20

type uc interface {
	CreateSession(ctx context.Context, name string) (usecase.SessionResult, error)
	GetSession(ctx context.Context, sessionID string) (usecase.SessionResult, error)
	DeleteSession(ctx context.Context, sessionID string) error
	Upload(ctx context.Context, sessionID string, files []entity.UploadedFile) (usecase.UploadResult, error)
	ListFiles(ctx context.Context, sessionID string) (usecase.ListFilesResult, error)
	Preview(ctx context.Context, sessionID, fileID string, rows int) (usecase.PreviewResult, error)
	Deduplicate(ctx context.Context, sessionID, fileID string) (usecase.DeduplicateResult, error)
	FillMissing(ctx context.Context, sessionID, fileID string) (usecase.FillMissingResult, error)
	Chart(ctx context.Context, sessionID, fileID string, columns []string) (usecase.ChartResult, error)
	Convert(ctx context.Context, sessionID string, req entity.ConversionRequest) (usecase.ConvertResult, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, maxUploadBytes int64) {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	end := &HTTPEndpoint{uc: uc, maxUploadBytes: maxUploadBytes}

	r.POST("/sessions", end.CreateSession)
	r.GET("/sessions/:session_id", end.GetSession)
	r.DELETE("/sessions/:session_id", end.DeleteSession)

	r.POST("/sessions/:session_id/files", end.Upload, pkgrouter.MiddlewareMaxBytes(maxUploadBytes))
	r.GET("/sessions/:session_id/files", end.ListFiles)
	r.GET("/sessions/:session_id/files/:file_id", end.Preview) // ?rows=
	r.POST("/sessions/:session_id/files/:file_id/deduplicate", end.Deduplicate)
	r.POST("/sessions/:session_id/files/:file_id/fill-missing", end.FillMissing)
	r.GET("/sessions/:session_id/files/:file_id/chart", end.Chart)       // ?columns=
	r.GET("/sessions/:session_id/files/:file_id/download", end.Download) // ?format=&columns=
}
