package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shandysiswandi/datasweeper/internal/pkg/pkgerror"
	"github.com/shandysiswandi/datasweeper/internal/pkg/pkglog"
	"github.com/shandysiswandi/datasweeper/internal/pkg/pkguid"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/entity"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/tabular"
)

const (
	DefaultPreviewRows    = 5
	DefaultMaxPreviewRows = 100
	maxSessionNameLength  = 100
)

type Store interface {
	CreateSession(ctx context.Context, session entity.Session) error
	GetSession(ctx context.Context, sessionID string) (entity.Session, error)
	TouchSession(ctx context.Context, sessionID string, at int64) error
	DeleteSession(ctx context.Context, sessionID string) error
	EvictIdle(ctx context.Context, before int64) (int, error)
	SaveFile(ctx context.Context, file entity.FileRecord) error
	GetFile(ctx context.Context, sessionID, fileID string) (entity.FileRecord, error)
	ListFiles(ctx context.Context, sessionID string) ([]entity.FileRecord, error)
	UpdateFile(ctx context.Context, sessionID, fileID string, fn func(file *entity.FileRecord) error) (entity.FileRecord, error)
}

// Recorder receives domain counters. A nil Recorder disables them.
type Recorder interface {
	FileUploaded(format string, outcome string)
	FileCleaned(operation string, changed int)
	FileConverted(format string)
	SessionsEvicted(n int)
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store          Store
	Recorder       Recorder
	Clock          Clock
	SessionID      pkguid.StringID
	FileID         pkguid.StringID
	PreviewRows    int
	MaxPreviewRows int
}

type Usecase struct {
	store          Store
	recorder       Recorder
	clock          Clock
	sessionID      pkguid.StringID
	fileID         pkguid.StringID
	previewRows    int
	maxPreviewRows int
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	recorder := dep.Recorder
	if recorder == nil {
		recorder = noopRecorder{}
	}

	maxRows := dep.MaxPreviewRows
	if maxRows <= 0 {
		maxRows = DefaultMaxPreviewRows
	}

	rows := dep.PreviewRows
	if rows <= 0 {
		rows = DefaultPreviewRows
	}
	rows = min(rows, maxRows)

	return &Usecase{
		store:          dep.Store,
		recorder:       recorder,
		clock:          clock,
		sessionID:      dep.SessionID,
		fileID:         dep.FileID,
		previewRows:    rows,
		maxPreviewRows: maxRows,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

type noopRecorder struct{}

func (noopRecorder) FileUploaded(string, string) {}
func (noopRecorder) FileCleaned(string, int)     {}
func (noopRecorder) FileConverted(string)        {}
func (noopRecorder) SessionsEvicted(int)         {}

func (u *Usecase) CreateSession(ctx context.Context, name string) (SessionResult, error) {
	if u.store == nil || u.sessionID == nil {
		return SessionResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	name = strings.TrimSpace(name)
	if err := validation.Validate(name,
		validation.Required,
		validation.RuneLength(1, maxSessionNameLength),
	); err != nil {
		return SessionResult{}, pkgerror.NewInvalidInput(err)
	}

	now := u.clock.Now().Unix()
	session := entity.Session{
		ID:         u.sessionID.Generate(),
		Name:       name,
		CreatedAt:  now,
		LastSeenAt: now,
	}
	if err := u.store.CreateSession(ctx, session); err != nil {
		return SessionResult{}, normalizeErr(err)
	}

	slog.InfoContext(pkglog.SetSessionID(ctx, session.ID), "session created")

	return SessionResult{Session: session}, nil
}

func (u *Usecase) GetSession(ctx context.Context, sessionID string) (SessionResult, error) {
	if err := u.touch(ctx, sessionID); err != nil {
		return SessionResult{}, err
	}

	session, err := u.store.GetSession(ctx, sessionID)
	if err != nil {
		return SessionResult{}, mapStoreErr(err)
	}

	files, err := u.store.ListFiles(ctx, sessionID)
	if err != nil {
		return SessionResult{}, mapStoreErr(err)
	}

	return SessionResult{Session: session, FileCount: len(files)}, nil
}

func (u *Usecase) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return pkgerror.NewInvalidInput(errors.New("session_id is required"))
	}

	if err := u.store.DeleteSession(ctx, sessionID); err != nil {
		return mapStoreErr(err)
	}

	slog.InfoContext(pkglog.SetSessionID(ctx, sessionID), "session deleted")

	return nil
}

// Upload parses every file and stores the ones that load. Files with an
// unsupported suffix, no data rows or malformed content are skipped with a
// warning; the call itself only fails for an unknown session.
func (u *Usecase) Upload(ctx context.Context, sessionID string, files []entity.UploadedFile) (UploadResult, error) {
	if u.fileID == nil {
		return UploadResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	if len(files) == 0 {
		return UploadResult{}, pkgerror.NewInvalidInput(errors.New("at least one file is required"))
	}

	if err := u.touch(ctx, sessionID); err != nil {
		return UploadResult{}, err
	}

	ctx = pkglog.SetSessionID(ctx, sessionID)
	result := UploadResult{
		Files:    make([]FileSummary, 0, len(files)),
		Warnings: make([]entity.FileWarning, 0),
	}

	for _, file := range files {
		record, warning := u.load(ctx, sessionID, file)
		if warning != nil {
			slog.WarnContext(ctx, "file skipped", "file_name", file.Name, "kind", warning.Kind, "reason", warning.Message)
			result.Warnings = append(result.Warnings, *warning)
			continue
		}

		if err := u.store.SaveFile(ctx, record); err != nil {
			return UploadResult{}, mapStoreErr(err)
		}

		slog.InfoContext(ctx, "file loaded", "file_id", record.ID, "file_name", record.Name,
			"rows", record.Table.NRows(), "columns", record.Table.NCols())
		result.Files = append(result.Files, summarize(record))
	}

	return result, nil
}

func (u *Usecase) load(ctx context.Context, sessionID string, file entity.UploadedFile) (entity.FileRecord, *entity.FileWarning) {
	format, err := tabular.DetectFormat(file.Name)
	if err != nil {
		u.recorder.FileUploaded("unknown", string(entity.WarningUnsupportedFormat))
		return entity.FileRecord{}, &entity.FileWarning{
			FileName: file.Name,
			Kind:     entity.WarningUnsupportedFormat,
			Message:  err.Error(),
		}
	}

	table, err := tabular.Parse(file.Data, format)
	if err != nil {
		kind := entity.WarningParseError
		if errors.Is(err, tabular.ErrEmptyFile) {
			kind = entity.WarningEmptyFile
		}
		u.recorder.FileUploaded(string(format), string(kind))
		return entity.FileRecord{}, &entity.FileWarning{
			FileName: file.Name,
			Kind:     kind,
			Message:  err.Error(),
		}
	}

	u.recorder.FileUploaded(string(format), "ACCEPTED")

	size := file.Size
	if size <= 0 {
		size = int64(len(file.Data))
	}

	return entity.FileRecord{
		ID:         u.fileID.Generate(),
		SessionID:  sessionID,
		Name:       file.Name,
		Size:       size,
		Format:     format,
		Table:      table,
		UploadedAt: u.clock.Now().Unix(),
	}, nil
}

func (u *Usecase) ListFiles(ctx context.Context, sessionID string) (ListFilesResult, error) {
	if err := u.touch(ctx, sessionID); err != nil {
		return ListFilesResult{}, err
	}

	files, err := u.store.ListFiles(ctx, sessionID)
	if err != nil {
		return ListFilesResult{}, mapStoreErr(err)
	}

	out := make([]FileSummary, 0, len(files))
	for _, file := range files {
		out = append(out, summarize(file))
	}

	return ListFilesResult{SessionID: sessionID, Files: out}, nil
}

// Preview returns the first rows of a file. rows <= 0 selects the configured
// default; larger requests are capped.
func (u *Usecase) Preview(ctx context.Context, sessionID, fileID string, rows int) (PreviewResult, error) {
	file, err := u.file(ctx, sessionID, fileID)
	if err != nil {
		return PreviewResult{}, err
	}

	if rows <= 0 {
		rows = u.previewRows
	}
	rows = min(rows, u.maxPreviewRows)

	return PreviewResult{
		File:    summarize(file),
		Columns: describeColumns(file.Table),
		Rows:    file.Table.Head(rows),
	}, nil
}

func (u *Usecase) Deduplicate(ctx context.Context, sessionID, fileID string) (DeduplicateResult, error) {
	if err := u.touch(ctx, sessionID); err != nil {
		return DeduplicateResult{}, err
	}

	var report tabular.DedupReport
	file, err := u.store.UpdateFile(ctx, sessionID, fileID, func(file *entity.FileRecord) error {
		file.Table, report = tabular.Deduplicate(file.Table)
		return nil
	})
	if err != nil {
		return DeduplicateResult{}, mapStoreErr(err)
	}

	u.recorder.FileCleaned("deduplicate", report.RowsRemoved)
	slog.InfoContext(pkglog.SetSessionID(ctx, sessionID), "duplicates removed",
		"file_id", fileID, "rows_before", report.RowsBefore, "rows_removed", report.RowsRemoved)

	return DeduplicateResult{
		File:        summarize(file),
		RowsBefore:  report.RowsBefore,
		RowsRemoved: report.RowsRemoved,
	}, nil
}

func (u *Usecase) FillMissing(ctx context.Context, sessionID, fileID string) (FillMissingResult, error) {
	if err := u.touch(ctx, sessionID); err != nil {
		return FillMissingResult{}, err
	}

	var report tabular.FillReport
	file, err := u.store.UpdateFile(ctx, sessionID, fileID, func(file *entity.FileRecord) error {
		file.Table, report = tabular.FillNumericGaps(file.Table)
		return nil
	})
	if err != nil {
		return FillMissingResult{}, mapStoreErr(err)
	}

	u.recorder.FileCleaned("fill_missing", report.CellsFilled)
	slog.InfoContext(pkglog.SetSessionID(ctx, sessionID), "missing values filled",
		"file_id", fileID, "cells_filled", report.CellsFilled, "skipped_columns", report.Skipped)

	return FillMissingResult{
		File:        summarize(file),
		CellsFilled: report.CellsFilled,
		Means:       report.Means,
		Skipped:     report.Skipped,
	}, nil
}

// Chart returns bar chart series for the leading numeric columns of the file,
// projected onto columns first when any are given.
func (u *Usecase) Chart(ctx context.Context, sessionID, fileID string, columns []string) (ChartResult, error) {
	file, err := u.file(ctx, sessionID, fileID)
	if err != nil {
		return ChartResult{}, err
	}

	table := file.Table
	if len(columns) > 0 {
		table, err = tabular.Project(table, columns)
		if err != nil {
			return ChartResult{}, pkgerror.NewInvalidInput(err)
		}
	}

	return ChartResult{
		FileID: file.ID,
		Rows:   table.NRows(),
		Series: tabular.ChartSeries(table),
	}, nil
}

// Convert projects the file onto req.Columns, when given, and encodes it as
// req.Format. The stored table is left untouched.
func (u *Usecase) Convert(ctx context.Context, sessionID string, req entity.ConversionRequest) (ConvertResult, error) {
	if err := req.Validate(); err != nil {
		return ConvertResult{}, pkgerror.NewInvalidInput(err)
	}

	file, err := u.file(ctx, sessionID, req.FileID)
	if err != nil {
		return ConvertResult{}, err
	}

	table := file.Table
	if len(req.Columns) > 0 {
		table, err = tabular.Project(table, req.Columns)
		if err != nil {
			return ConvertResult{}, pkgerror.NewInvalidInput(err)
		}
	}

	out, err := tabular.Serialize(table, req.Format, file.Name)
	if err != nil {
		return ConvertResult{}, pkgerror.NewServer(err)
	}

	u.recorder.FileConverted(string(req.Format))
	slog.InfoContext(pkglog.SetSessionID(ctx, sessionID), "file converted",
		"file_id", file.ID, "format", req.Format, "bytes", len(out.Data))

	return ConvertResult{
		Filename: out.Filename,
		MIMEType: out.MIMEType,
		Data:     out.Data,
	}, nil
}

// EvictIdle removes sessions not seen for longer than ttl.
func (u *Usecase) EvictIdle(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, nil
	}

	before := u.clock.Now().Add(-ttl).Unix()
	n, err := u.store.EvictIdle(ctx, before)
	if err != nil {
		return 0, normalizeErr(err)
	}

	if n > 0 {
		u.recorder.SessionsEvicted(n)
		slog.InfoContext(ctx, "idle sessions evicted", "count", n)
	}

	return n, nil
}

func (u *Usecase) file(ctx context.Context, sessionID, fileID string) (entity.FileRecord, error) {
	if err := u.touch(ctx, sessionID); err != nil {
		return entity.FileRecord{}, err
	}

	if fileID == "" {
		return entity.FileRecord{}, pkgerror.NewInvalidInput(errors.New("file_id is required"))
	}

	file, err := u.store.GetFile(ctx, sessionID, fileID)
	if err != nil {
		return entity.FileRecord{}, mapStoreErr(err)
	}

	return file, nil
}

func (u *Usecase) touch(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return pkgerror.NewInvalidInput(errors.New("session_id is required"))
	}

	if err := u.store.TouchSession(ctx, sessionID, u.clock.Now().Unix()); err != nil {
		return mapStoreErr(err)
	}

	return nil
}

func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, entity.ErrSessionNotFound):
		return pkgerror.NewNotFound("session not found")
	case errors.Is(err, entity.ErrFileNotFound):
		return pkgerror.NewNotFound("file not found")
	case errors.Is(err, pkgerror.ErrNotFound):
		return pkgerror.NewNotFound("resource not found")
	}
	return normalizeErr(err)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
