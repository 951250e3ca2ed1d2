package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/example/requesthub/internal/models"
)

const (
	schemaName = "gs_resource_request_hub"
	tableName  = schemaName + ".requests"
)

// schemaStatements are executed one by one so InitSchema stays
// idempotent and re-runnable.
var schemaStatements = []string{
	`create schema if not exists ` + schemaName,
	`create table if not exists ` + tableName + ` (
		id uuid primary key,
		scholar_name text not null,
		request_type text not null,
		priority text not null,
		status text not null,
		needed_by date,
		owner text,
		channel text,
		notes text,
		created_at timestamptz not null,
		updated_at timestamptz not null
	)`,
	`create index if not exists requests_status_idx on ` + tableName + `(status)`,
	`create index if not exists requests_priority_idx on ` + tableName + `(priority)`,
}

const requestColumns = `id, scholar_name, request_type, priority, status, needed_by, owner, channel, notes, created_at, updated_at`

const insertQuery = `
	insert into ` + tableName + `
	(` + requestColumns + `)
	values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const updateStatusQuery = `
	update ` + tableName + `
	set status = $1, updated_at = $2
	where id = $3`

const triageCandidatesQuery = `
	select ` + requestColumns + `
	from ` + tableName + `
	where status not in ('fulfilled', 'closed') and needed_by is not null`

const statusCountsQuery = `
	select status, count(*)
	from ` + tableName + `
	group by status
	order by count(*) desc, status asc`

const priorityCountsQuery = `
	select priority, count(*)
	from ` + tableName + `
	group by priority
	order by count(*) desc, priority asc`

const averageDaysOpenQuery = `
	select avg(extract(epoch from (now() - created_at)) / 86400.0)
	from ` + tableName + `
	where status in ('open', 'in_progress')`

// RequestRepository implements secondary.RequestRepository with
// PostgreSQL.
type RequestRepository struct {
	pool *pgxpool.Pool
	log  *zap.SugaredLogger
}

// NewRequestRepository creates a repository on an open pool.
func NewRequestRepository(pool *pgxpool.Pool, log *zap.SugaredLogger) *RequestRepository {
	return &RequestRepository{pool: pool, log: log.Named("repo.postgres")}
}

// InitSchema idempotently creates the schema, table, and the status
// and priority indexes.
func (r *RequestRepository) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return &StorageError{Op: "init schema", Err: err}
		}
	}
	r.log.Debugw("schema ensured", "table", tableName)
	return nil
}

// SeedIfEmpty inserts the sample fixtures when the table holds no
// rows. Existing data is never touched.
func (r *RequestRepository) SeedIfEmpty(ctx context.Context) (int, error) {
	if err := r.InitSchema(ctx); err != nil {
		return 0, err
	}

	var count int64
	if err := r.pool.QueryRow(ctx, `select count(*) from `+tableName).Scan(&count); err != nil {
		return 0, &StorageError{Op: "count rows", Err: err}
	}
	if count > 0 {
		return 0, nil
	}

	samples := SampleRequests()
	for _, draft := range samples {
		if _, err := r.Add(ctx, draft); err != nil {
			return 0, err
		}
	}
	r.log.Debugw("seeded sample requests", "count", len(samples))
	return len(samples), nil
}

// Add persists a validated draft and returns the generated id.
func (r *RequestRepository) Add(ctx context.Context, draft models.NewRequest) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now().UTC()

	_, err := r.pool.Exec(ctx, insertQuery,
		id.String(),
		draft.ScholarName,
		draft.RequestType,
		string(draft.Priority),
		string(draft.Status),
		draft.NeededBy,
		draft.Owner,
		draft.Channel,
		draft.Notes,
		now,
		now,
	)
	if err != nil {
		return uuid.Nil, &StorageError{Op: "insert request", Err: err}
	}
	return id, nil
}

// List returns matching records, most recently updated first.
func (r *RequestRepository) List(ctx context.Context, filter models.RequestFilter) ([]models.ResourceRequest, error) {
	query, args := buildListQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, &StorageError{Op: "list requests", Err: err}
	}
	defer rows.Close()
	return scanRequests(rows)
}

// Export returns full records for codec consumption; same filter
// semantics as List.
func (r *RequestRepository) Export(ctx context.Context, filter models.RequestFilter) ([]models.ResourceRequest, error) {
	return r.List(ctx, filter)
}

// UpdateStatus sets the status and refreshes updated_at, reporting
// whether a row matched. A malformed id is treated as not found.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id string, status models.Status) (bool, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	tag, err := r.pool.Exec(ctx, updateStatusQuery, string(status), time.Now().UTC(), parsed.String())
	if err != nil {
		return false, &StorageError{Op: "update status", Err: err}
	}
	return tag.RowsAffected() > 0, nil
}

// TriageCandidates fetches every non-terminal record with a due date.
func (r *RequestRepository) TriageCandidates(ctx context.Context) ([]models.ResourceRequest, error) {
	rows, err := r.pool.Query(ctx, triageCandidatesQuery)
	if err != nil {
		return nil, &StorageError{Op: "triage candidates", Err: err}
	}
	defer rows.Close()
	return scanRequests(rows)
}

// Stats computes the grouped counts and average-age metric with
// storage-side aggregation.
func (r *RequestRepository) Stats(ctx context.Context) (models.RequestStats, error) {
	result := models.RequestStats{}

	rows, err := r.pool.Query(ctx, statusCountsQuery)
	if err != nil {
		return result, &StorageError{Op: "status counts", Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return result, &StorageError{Op: "scan status count", Err: err}
		}
		result.StatusCounts = append(result.StatusCounts, models.StatusStat{Status: models.Status(status), Count: count})
	}
	if err := rows.Err(); err != nil {
		return result, &StorageError{Op: "iterate status counts", Err: err}
	}

	prows, err := r.pool.Query(ctx, priorityCountsQuery)
	if err != nil {
		return result, &StorageError{Op: "priority counts", Err: err}
	}
	defer prows.Close()
	for prows.Next() {
		var priority string
		var count int
		if err := prows.Scan(&priority, &count); err != nil {
			return result, &StorageError{Op: "scan priority count", Err: err}
		}
		result.PriorityCounts = append(result.PriorityCounts, models.PriorityStat{Priority: models.Priority(priority), Count: count})
	}
	if err := prows.Err(); err != nil {
		return result, &StorageError{Op: "iterate priority counts", Err: err}
	}

	var avg *float64
	if err := r.pool.QueryRow(ctx, averageDaysOpenQuery).Scan(&avg); err != nil {
		return result, &StorageError{Op: "average days open", Err: err}
	}
	result.AverageDaysOpen = avg

	return result, nil
}

func buildListQuery(filter models.RequestFilter) (string, []any) {
	query := `select ` + requestColumns + ` from ` + tableName
	var args []any

	where := ""
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where = fmt.Sprintf(" where status = $%d", len(args))
	}
	if filter.Priority != nil {
		args = append(args, string(*filter.Priority))
		clause := fmt.Sprintf("priority = $%d", len(args))
		if where == "" {
			where = " where " + clause
		} else {
			where += " and " + clause
		}
	}

	args = append(args, filter.Limit)
	query += where + fmt.Sprintf(" order by updated_at desc limit $%d", len(args))
	return query, args
}

func scanRequests(rows pgx.Rows) ([]models.ResourceRequest, error) {
	var records []models.ResourceRequest
	for rows.Next() {
		var rec models.ResourceRequest
		var id, priority, status string
		err := rows.Scan(
			&id,
			&rec.ScholarName,
			&rec.RequestType,
			&priority,
			&status,
			&rec.NeededBy,
			&rec.Owner,
			&rec.Channel,
			&rec.Notes,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, &StorageError{Op: "scan request", Err: err}
		}
		rec.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, &StorageError{Op: "parse request id", Err: err}
		}
		rec.Priority = models.Priority(priority)
		rec.Status = models.Status(status)
		// pgx hands timestamptz back in the server zone; exports and
		// views expect UTC.
		rec.CreatedAt = rec.CreatedAt.UTC()
		rec.UpdatedAt = rec.UpdatedAt.UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "iterate requests", Err: err}
	}
	return records, nil
}
