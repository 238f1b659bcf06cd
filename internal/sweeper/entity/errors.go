package entity

import (
	"fmt"

	"github.com/shandysiswandi/datasweeper/internal/pkg/pkgerror"
)

var (
	ErrSessionNotFound = fmt.Errorf("session: %w", pkgerror.ErrNotFound)
	ErrFileNotFound    = fmt.Errorf("file: %w", pkgerror.ErrNotFound)
)
