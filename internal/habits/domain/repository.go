package domain

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for habit history persistence. The core
// never performs I/O itself; the caller owns the read-modify-write cycle
// and must serialize concurrent writers.
type Repository interface {
	// Save persists a history (create or update).
	Save(ctx context.Context, history *History) error

	// FindByUserID loads the history for a user. Returns nil, nil when the
	// user has no history yet.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*History, error)
}
