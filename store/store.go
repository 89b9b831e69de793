package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Load for an unknown record ID.
var ErrNotFound = errors.New("record not found")

// Record is one solved puzzle kept for later review. Puzzle and Solution
// are 81-digit row-major strings.
type Record struct {
	ID         string    `json:"id"`
	Puzzle     string    `json:"puzzle"`
	Solution   string    `json:"solution"`
	Depth      int       `json:"depth"`
	Difficulty string    `json:"difficulty,omitempty"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store keeps solve records.
type Store interface {
	// Save persists the record, assigning an ID and timestamp if unset.
	Save(ctx context.Context, r *Record) error
	// Load returns the record with the given ID, or ErrNotFound.
	Load(ctx context.Context, id string) (*Record, error)
	// List returns all records, newest first.
	List(ctx context.Context) ([]*Record, error)
}
