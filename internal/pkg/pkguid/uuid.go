package pkguid

import (
	"log/slog"

	"github.com/google/uuid"
)

// UUID generates time-ordered RFC 9562 version 7 UUID strings.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUIDv7 string, or a random version 4 UUID when the
// v7 clock sequence cannot be read.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		slog.Warn("uuid v7 unavailable, falling back to v4", "error", err)
		return uuid.NewString()
	}
	return id.String()
}
