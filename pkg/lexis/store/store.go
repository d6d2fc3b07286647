package store

import (
	"context"
	"time"

	"github.com/cognicore/lexis/pkg/lexis/freq"
)

// Store persists collocation runs and answers aggregate queries over them.
type Store interface {
	Close() error

	SaveRun(ctx context.Context, r Run) error
	// GetRun returns internalerr.ErrNotFound for unknown ids.
	GetRun(ctx context.Context, id string) (Run, error)
	// ListRuns returns runs newest first, without counts. limit <= 0 lists all.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	// DeleteRun removes a run and its counts. Unknown ids give ErrNotFound.
	DeleteRun(ctx context.Context, id string) error

	// TopCollocates sums counts over every run stored for pattern.
	TopCollocates(ctx context.Context, pattern string, k int) ([]freq.Pair, error)
}

// Run is the result of one collocation analysis.
type Run struct {
	ID        string      `json:"id"`
	Source    string      `json:"source,omitempty"`
	Pattern   string      `json:"pattern"`
	Width     int         `json:"width"`
	CreatedAt time.Time   `json:"created_at"`
	Counts    []freq.Pair `json:"counts,omitempty"`
}

// Total returns the sum of the run's counts.
func (r Run) Total() int {
	total := 0
	for _, p := range r.Counts {
		total += p.Value
	}
	return total
}
