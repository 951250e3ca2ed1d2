// Package secondary defines the persistence ports the application
// layer depends on.
package secondary

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/requesthub/internal/models"
)

// RequestRepository is the sole reader and writer of persisted
// request state. Implementations return value copies with no
// back-reference to storage, and wrap every connectivity or query
// failure in a StorageError.
type RequestRepository interface {
	// InitSchema idempotently ensures the namespace, table, and
	// secondary indexes exist. Safe to call repeatedly.
	InitSchema(ctx context.Context) error

	// SeedIfEmpty ensures the schema and, when the table holds zero
	// rows, inserts the sample fixtures. Returns how many rows were
	// inserted (zero when data already existed).
	SeedIfEmpty(ctx context.Context) (int, error)

	// Add persists a validated draft, assigning a fresh id and
	// created/updated timestamps. Returns the new id.
	Add(ctx context.Context, draft models.NewRequest) (uuid.UUID, error)

	// List returns records matching the filter, most recently
	// updated first, capped at the filter limit.
	List(ctx context.Context, filter models.RequestFilter) ([]models.ResourceRequest, error)

	// Export returns full records for CSV output, same filter
	// semantics as List.
	Export(ctx context.Context, filter models.RequestFilter) ([]models.ResourceRequest, error)

	// UpdateStatus sets the status and refreshes updated_at.
	// Reports whether a matching row existed; a malformed id is
	// not-found, never an error.
	UpdateStatus(ctx context.Context, id string, status models.Status) (bool, error)

	// TriageCandidates returns every record eligible for triage
	// consideration: not terminal and carrying a due date.
	TriageCandidates(ctx context.Context) ([]models.ResourceRequest, error)

	// Stats aggregates status counts, priority counts, and the
	// average age in days of open/in_progress requests.
	Stats(ctx context.Context) (models.RequestStats, error)
}
