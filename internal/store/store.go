package store

import (
	"context"
	"time"
)

// Report is one archived analysis run.
type Report struct {
	ID        int64
	URL       string
	Title     string
	SiteName  string
	Byline    string
	Report    string
	Degraded  bool
	CreatedAt time.Time
}

// Store is the report archive backend.
type Store interface {
	EnsureSchema(ctx context.Context) error
	SaveReport(ctx context.Context, report *Report) (int64, error)

	// General
	Close()
}
