package sweeper

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shandysiswandi/datasweeper/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/datasweeper/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/datasweeper/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/datasweeper/internal/pkg/pkguid"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/inbound"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/metric"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/store"
	"github.com/shandysiswandi/datasweeper/internal/sweeper/usecase"
)

// Settings are the modules.sweeper.* config values.
type Settings struct {
	MaxUploadBytes  int64
	PreviewRows     int
	MaxPreviewRows  int
	SessionTTL      time.Duration
	JanitorInterval time.Duration
}

func LoadSettings(cfg pkgconfig.Config) Settings {
	s := Settings{
		MaxUploadBytes:  inbound.DefaultMaxUploadBytes,
		PreviewRows:     usecase.DefaultPreviewRows,
		MaxPreviewRows:  usecase.DefaultMaxPreviewRows,
		SessionTTL:      2 * time.Hour,
		JanitorInterval: 5 * time.Minute,
	}

	if cfg.IsSet("modules.sweeper.max_upload_bytes") {
		s.MaxUploadBytes = cfg.GetInt("modules.sweeper.max_upload_bytes")
	}
	if cfg.IsSet("modules.sweeper.preview_rows") {
		s.PreviewRows = int(cfg.GetInt("modules.sweeper.preview_rows"))
	}
	if cfg.IsSet("modules.sweeper.max_preview_rows") {
		s.MaxPreviewRows = int(cfg.GetInt("modules.sweeper.max_preview_rows"))
	}
	if cfg.IsSet("modules.sweeper.session_ttl") {
		s.SessionTTL = cfg.GetDuration("modules.sweeper.session_ttl")
	}
	if cfg.IsSet("modules.sweeper.janitor_interval") {
		s.JanitorInterval = cfg.GetDuration("modules.sweeper.janitor_interval")
	}

	return s
}

func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.MaxUploadBytes, validation.Required, validation.Min(int64(1))),
		validation.Field(&s.PreviewRows, validation.Required, validation.Min(1), validation.Max(s.MaxPreviewRows)),
		validation.Field(&s.MaxPreviewRows, validation.Required, validation.Min(1)),
		validation.Field(&s.SessionTTL, validation.Required, validation.Min(time.Minute)),
		validation.Field(&s.JanitorInterval, validation.Required, validation.Min(time.Second)),
	)
}

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Registry  prometheus.Registerer
	Context   context.Context
	ID        pkguid.StringID
	Clock     usecase.Clock
}

func New(dep Dependency) (func(context.Context) error, error) {
	settings := LoadSettings(dep.Config)
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	fileIDs, err := pkguid.NewSnowflakeString()
	if err != nil {
		return nil, err
	}

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	var recorder usecase.Recorder
	if dep.Registry != nil {
		recorder = metric.NewPrometheus(dep.Registry)
	}

	storage := store.NewInMemoryStore()
	uc := usecase.New(usecase.Dependency{
		Store:          storage,
		Recorder:       recorder,
		Clock:          dep.Clock,
		SessionID:      dep.ID,
		FileID:         fileIDs,
		PreviewRows:    settings.PreviewRows,
		MaxPreviewRows: settings.MaxPreviewRows,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, settings.MaxUploadBytes)

	ctx, cancel := context.WithCancel(dep.Context)
	dep.Goroutine.Every(ctx, "sweeper session janitor", settings.JanitorInterval, func(ctx context.Context) error {
		_, err := uc.EvictIdle(ctx, settings.SessionTTL)
		return err
	})

	return func(context.Context) error {
		cancel()
		return nil
	}, nil
}
