package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/requesthub/internal/models"
)

// mockRequestRepository implements secondary.RequestRepository for
// testing.
type mockRequestRepository struct {
	added      []models.NewRequest
	records    []models.ResourceRequest
	candidates []models.ResourceRequest
	updated    map[string]models.Status
	updateOK   bool
	seeded     int
	initCalls  int
	err        error
}

func newMockRepo() *mockRequestRepository {
	return &mockRequestRepository{updated: map[string]models.Status{}, updateOK: true}
}

func (m *mockRequestRepository) InitSchema(ctx context.Context) error {
	m.initCalls++
	return m.err
}

func (m *mockRequestRepository) SeedIfEmpty(ctx context.Context) (int, error) {
	return m.seeded, m.err
}

func (m *mockRequestRepository) Add(ctx context.Context, draft models.NewRequest) (uuid.UUID, error) {
	if m.err != nil {
		return uuid.Nil, m.err
	}
	m.added = append(m.added, draft)
	return uuid.New(), nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter models.RequestFilter) ([]models.ResourceRequest, error) {
	return m.records, m.err
}

func (m *mockRequestRepository) Export(ctx context.Context, filter models.RequestFilter) ([]models.ResourceRequest, error) {
	return m.records, m.err
}

func (m *mockRequestRepository) UpdateStatus(ctx context.Context, id string, status models.Status) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.updated[id] = status
	return m.updateOK, nil
}

func (m *mockRequestRepository) TriageCandidates(ctx context.Context) ([]models.ResourceRequest, error) {
	return m.candidates, m.err
}

func (m *mockRequestRepository) Stats(ctx context.Context) (models.RequestStats, error) {
	return models.RequestStats{}, m.err
}

func newTestService(repo *mockRequestRepository) *RequestService {
	return NewRequestService(repo, zap.NewNop().Sugar())
}

func TestAddRejectsInvalidDraftBeforeStorage(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	_, err := svc.Add(context.Background(), models.RequestInput{
		ScholarName: "",
		RequestType: "Laptop",
		Priority:    "critical",
		Status:      "open",
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Issues) != 2 {
		t.Errorf("got issues %v, want scholar and priority issues", vErr.Issues)
	}
	if len(repo.added) != 0 {
		t.Error("invalid draft reached the repository")
	}
}

func TestAddNormalizesVocabularyCase(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	_, err := svc.Add(context.Background(), models.RequestInput{
		ScholarName: "Aisha",
		RequestType: "Laptop replacement",
		Priority:    "HIGH",
		Status:      "Open",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if len(repo.added) != 1 {
		t.Fatalf("expected one persisted draft, got %d", len(repo.added))
	}
	if repo.added[0].Priority != models.PriorityHigh || repo.added[0].Status != models.StatusOpen {
		t.Errorf("draft not normalized: %+v", repo.added[0])
	}
}

func TestUpdateStatusValidatesVocabulary(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), uuid.NewString(), "done")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Error("invalid status reached the repository")
	}
}

func TestUpdateStatusReportsNotFound(t *testing.T) {
	repo := newMockRepo()
	repo.updateOK = false
	svc := newTestService(repo)

	ok, err := svc.UpdateStatus(context.Background(), uuid.NewString(), "closed")
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if ok {
		t.Error("expected not-found outcome")
	}
}

func TestTriageFiltersCandidates(t *testing.T) {
	now := time.Now()
	soon := now.AddDate(0, 0, 2)
	far := now.AddDate(0, 0, 30)

	repo := newMockRepo()
	repo.candidates = []models.ResourceRequest{
		{ID: uuid.New(), ScholarName: "due-soon", Status: models.StatusOpen, Priority: models.PriorityHigh, NeededBy: &soon},
		{ID: uuid.New(), ScholarName: "due-later", Status: models.StatusOpen, Priority: models.PriorityHigh, NeededBy: &far},
	}
	svc := newTestService(repo)

	got, err := svc.Triage(context.Background(), models.TriageFilter{WindowDays: 7, Limit: 25})
	if err != nil {
		t.Fatalf("Triage failed: %v", err)
	}
	if len(got) != 1 || got[0].ScholarName != "due-soon" {
		t.Errorf("unexpected triage result: %+v", got)
	}
}

func TestExportWritesFileAndReportsCount(t *testing.T) {
	owner := "Ops"
	repo := newMockRepo()
	repo.records = []models.ResourceRequest{
		{
			ID:          uuid.New(),
			ScholarName: "Aisha",
			RequestType: "Laptop",
			Priority:    models.PriorityHigh,
			Status:      models.StatusOpen,
			Owner:       &owner,
			CreatedAt:   time.Now().UTC(),
			UpdatedAt:   time.Now().UTC(),
		},
	}
	svc := newTestService(repo)

	path := filepath.Join(t.TempDir(), "out.csv")
	count, abs, err := svc.Export(context.Background(), models.RequestFilter{Limit: 200}, path)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if !filepath.IsAbs(abs) {
		t.Errorf("path %q is not absolute", abs)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.Contains(string(data), "Aisha") {
		t.Error("exported file missing record data")
	}
}

func TestSeedReportsInsertedCount(t *testing.T) {
	repo := newMockRepo()
	repo.seeded = 8
	svc := newTestService(repo)

	inserted, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if inserted != 8 {
		t.Errorf("inserted = %d, want 8", inserted)
	}
}

func TestInitSchemaDelegates(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	if err := svc.InitSchema(context.Background()); err != nil {
		t.Fatalf("InitSchema failed: %v", err)
	}
	if repo.initCalls != 1 {
		t.Errorf("initCalls = %d, want 1", repo.initCalls)
	}
}

func TestStorageErrorsPropagate(t *testing.T) {
	repo := newMockRepo()
	repo.err = errors.New("connection refused")
	svc := newTestService(repo)

	if _, err := svc.List(context.Background(), models.RequestFilter{Limit: 25}); !errors.Is(err, repo.err) {
		t.Errorf("List error = %v, want wrapped storage failure", err)
	}
	if _, err := svc.Stats(context.Background()); !errors.Is(err, repo.err) {
		t.Errorf("Stats error = %v, want wrapped storage failure", err)
	}
}
