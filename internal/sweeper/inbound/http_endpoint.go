package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/shandysiswandi/datasweeper/internal/pkg/pkgerror"
	"github.com/shandysiswandi/datasweeper/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/entity"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/tabular"
)

type HTTPEndpoint struct {
	uc             uc
	maxUploadBytes int64
}

func (h *HTTPEndpoint) CreateSession(ctx context.Context, r *http.Request) (any, error) {
	var req CreateSessionRequest
	if r.Body == nil {
		return nil, pkgerror.NewInvalidFormat()
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, pkgerror.NewInvalidFormat()
	}

	result, err := h.uc.CreateSession(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	return CreateSessionResponse{Session: toHTTPSession(result.Session, 0)}, nil
}

func (h *HTTPEndpoint) GetSession(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.GetSession(ctx, pkgrouter.GetParam(ctx, "session_id"))
	if err != nil {
		return nil, err
	}

	return toHTTPSession(result.Session, result.FileCount), nil
}

func (h *HTTPEndpoint) DeleteSession(ctx context.Context, r *http.Request) (any, error) {
	if err := h.uc.DeleteSession(ctx, pkgrouter.GetParam(ctx, "session_id")); err != nil {
		return nil, err
	}

	return DeleteSessionResponse{}, nil
}

func (h *HTTPEndpoint) Upload(ctx context.Context, r *http.Request) (any, error) {
	files, err := h.readFiles(r)
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Upload(ctx, pkgrouter.GetParam(ctx, "session_id"), files)
	if err != nil {
		return nil, err
	}

	resp := UploadResponse{
		Files:    make([]File, 0, len(result.Files)),
		Warnings: make([]Warning, 0, len(result.Warnings)),
	}
	for _, f := range result.Files {
		resp.Files = append(resp.Files, toHTTPFile(f))
	}
	for _, w := range result.Warnings {
		resp.Warnings = append(resp.Warnings, Warning{FileName: w.FileName, Kind: w.Kind, Message: w.Message})
	}

	return resp, nil
}

func (h *HTTPEndpoint) ListFiles(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.ListFiles(ctx, pkgrouter.GetParam(ctx, "session_id"))
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(result.Files))
	for _, f := range result.Files {
		files = append(files, toHTTPFile(f))
	}

	return ListFilesResponse{SessionID: result.SessionID, Files: files}, nil
}

func (h *HTTPEndpoint) Preview(ctx context.Context, r *http.Request) (any, error) {
	rows, ok := pkgrouter.QueryInt(r, "rows", 0)
	if !ok {
		return nil, pkgerror.NewInvalidInput(errors.New("rows must be a positive integer"))
	}

	result, err := h.uc.Preview(ctx, pkgrouter.GetParam(ctx, "session_id"), pkgrouter.GetParam(ctx, "file_id"), rows)
	if err != nil {
		return nil, err
	}

	columns := make([]Column, 0, len(result.Columns))
	for _, c := range result.Columns {
		columns = append(columns, Column{Name: c.Name, Kind: c.Kind})
	}

	return PreviewResponse{
		File:    toHTTPFile(result.File),
		Columns: columns,
		Rows:    result.Rows,
	}, nil
}

func (h *HTTPEndpoint) Deduplicate(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.Deduplicate(ctx, pkgrouter.GetParam(ctx, "session_id"), pkgrouter.GetParam(ctx, "file_id"))
	if err != nil {
		return nil, err
	}

	return DeduplicateResponse{
		File:        toHTTPFile(result.File),
		RowsBefore:  result.RowsBefore,
		RowsRemoved: result.RowsRemoved,
	}, nil
}

func (h *HTTPEndpoint) FillMissing(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.FillMissing(ctx, pkgrouter.GetParam(ctx, "session_id"), pkgrouter.GetParam(ctx, "file_id"))
	if err != nil {
		return nil, err
	}

	skipped := result.Skipped
	if skipped == nil {
		skipped = []string{}
	}

	return FillMissingResponse{
		File:           toHTTPFile(result.File),
		CellsFilled:    result.CellsFilled,
		Means:          result.Means,
		SkippedColumns: skipped,
	}, nil
}

func (h *HTTPEndpoint) Chart(ctx context.Context, r *http.Request) (any, error) {
	columns := pkgrouter.QueryList(r, "columns")

	result, err := h.uc.Chart(ctx, pkgrouter.GetParam(ctx, "session_id"), pkgrouter.GetParam(ctx, "file_id"), columns)
	if err != nil {
		return nil, err
	}

	series := make([]Series, 0, len(result.Series))
	for _, s := range result.Series {
		series = append(series, Series{Name: s.Name, Values: s.Points})
	}

	return ChartResponse{FileID: result.FileID, Rows: result.Rows, Series: series}, nil
}

func (h *HTTPEndpoint) Download(ctx context.Context, r *http.Request) (any, error) {
	format, err := tabular.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		return nil, pkgerror.NewInvalidInput(err)
	}

	result, err := h.uc.Convert(ctx, pkgrouter.GetParam(ctx, "session_id"), entity.ConversionRequest{
		FileID:  pkgrouter.GetParam(ctx, "file_id"),
		Format:  format,
		Columns: pkgrouter.QueryList(r, "columns"),
	})
	if err != nil {
		return nil, err
	}

	return DownloadResponse{
		filename:    result.Filename,
		contentType: result.MIMEType,
		data:        result.Data,
	}, nil
}

func (h *HTTPEndpoint) readFiles(r *http.Request) ([]entity.UploadedFile, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.EqualFold(mediaType, "multipart/form-data") {
		return nil, pkgerror.NewInvalidFormat()
	}

	reader, err := r.MultipartReader()
	if err != nil {
		return nil, pkgerror.NewInvalidFormat()
	}

	var files []entity.UploadedFile
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, h.readErr(err)
		}

		if name := part.FormName(); (name != "files" && name != "file") || part.FileName() == "" {
			_ = part.Close()
			continue
		}

		data, err := io.ReadAll(part)
		_ = part.Close()
		if err != nil {
			return nil, h.readErr(err)
		}

		files = append(files, entity.UploadedFile{
			Name: part.FileName(),
			Size: int64(len(data)),
			Data: data,
		})
	}

	if len(files) == 0 {
		return nil, pkgerror.NewInvalidInput(errors.New("files part is required"))
	}

	return files, nil
}

func (h *HTTPEndpoint) readErr(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return pkgerror.NewTooLarge(h.maxUploadBytes)
	}
	return pkgerror.NewInvalidFormat()
}
