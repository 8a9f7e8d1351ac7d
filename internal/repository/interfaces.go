package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/hoursreport/internal/domain"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguous is returned when an ID prefix matches several runs.
	ErrAmbiguous = errors.New("ambiguous id prefix")
)

// RunRepo stores report runs and their per-project lines.
type RunRepo interface {
	// Create inserts the run and its project lines. Callers that need the
	// writes to be atomic run it through a db.UnitOfWork.
	Create(ctx context.Context, run *domain.ReportRun) error
	GetByID(ctx context.Context, id string) (*domain.ReportRun, error)
	// ResolveID expands a unique ID prefix to the full run ID.
	ResolveID(ctx context.Context, prefix string) (string, error)
	// ListRecent returns up to limit runs, newest first, without project
	// lines. An empty configKey matches every config.
	ListRecent(ctx context.Context, configKey string, limit int) ([]*domain.ReportRun, error)
	// Prune deletes all but the newest keep runs and reports how many went.
	Prune(ctx context.Context, keep int) (int64, error)
}
