// Package app wires the domain rules to the persistence port.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/requesthub/internal/core/request"
	"github.com/example/requesthub/internal/core/triage"
	"github.com/example/requesthub/internal/export"
	"github.com/example/requesthub/internal/models"
	"github.com/example/requesthub/internal/ports/secondary"
)

// RequestService implements the hub's operations over an injected
// repository.
type RequestService struct {
	repo secondary.RequestRepository
	log  *zap.SugaredLogger
	now  func() time.Time
}

// NewRequestService creates a service with injected dependencies.
func NewRequestService(repo secondary.RequestRepository, log *zap.SugaredLogger) *RequestService {
	return &RequestService{
		repo: repo,
		log:  log.Named("app.requests"),
		now:  time.Now,
	}
}

// InitSchema idempotently ensures the persistent schema exists.
func (s *RequestService) InitSchema(ctx context.Context) error {
	return s.repo.InitSchema(ctx)
}

// Seed ensures the schema and inserts sample data into an empty
// table. Returns the number of inserted rows.
func (s *RequestService) Seed(ctx context.Context) (int, error) {
	return s.repo.SeedIfEmpty(ctx)
}

// Add validates the draft and persists it, returning the new id. All
// violated rules are reported together in a ValidationError.
func (s *RequestService) Add(ctx context.Context, in models.RequestInput) (uuid.UUID, error) {
	result := request.Validate(in)
	if !result.Valid {
		return uuid.Nil, &ValidationError{Issues: result.Issues}
	}

	// Parses cannot fail past validation.
	priority, _ := models.ParsePriority(in.Priority)
	status, _ := models.ParseStatus(in.Status)

	id, err := s.repo.Add(ctx, models.NewRequest{
		ScholarName: in.ScholarName,
		RequestType: in.RequestType,
		Priority:    priority,
		Status:      status,
		NeededBy:    in.NeededBy,
		Owner:       in.Owner,
		Channel:     in.Channel,
		Notes:       in.Notes,
	})
	if err != nil {
		return uuid.Nil, err
	}
	s.log.Debugw("request added", "id", id)
	return id, nil
}

// List returns records matching the filter, most recently updated
// first.
func (s *RequestService) List(ctx context.Context, filter models.RequestFilter) ([]models.ResourceRequest, error) {
	return s.repo.List(ctx, filter)
}

// Export writes matching records to a CSV file and reports the row
// count and the absolute path written.
func (s *RequestService) Export(ctx context.Context, filter models.RequestFilter, path string) (int, string, error) {
	records, err := s.repo.Export(ctx, filter)
	if err != nil {
		return 0, "", err
	}

	count, err := export.WriteFile(path, records)
	if err != nil {
		return 0, "", fmt.Errorf("write export: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	s.log.Debugw("exported requests", "count", count, "path", abs)
	return count, abs, nil
}

// Triage returns due-soon (or overdue) open requests inside the
// window, soonest first.
func (s *RequestService) Triage(ctx context.Context, filter models.TriageFilter) ([]models.TriageRecord, error) {
	candidates, err := s.repo.TriageCandidates(ctx)
	if err != nil {
		return nil, err
	}
	return triage.Select(candidates, filter, s.now()), nil
}

// UpdateStatus moves a request to a new lifecycle state. The raw
// status is validated first; a nonexistent or malformed id reports
// false without error.
func (s *RequestService) UpdateStatus(ctx context.Context, id, rawStatus string) (bool, error) {
	status, ok := models.ParseStatus(rawStatus)
	if !ok {
		return false, &ValidationError{Issues: []string{"status must be open, in_progress, fulfilled, or closed"}}
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Stats aggregates the stored record set.
func (s *RequestService) Stats(ctx context.Context) (models.RequestStats, error) {
	return s.repo.Stats(ctx)
}
