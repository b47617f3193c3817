package repositories

import (
	"context"
	"time"

	"backoffice/internal/models"

	"github.com/google/uuid"
)

type ProcessRepository interface {
	Create(ctx context.Context, p *models.Process) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Process, error)
	List(ctx context.Context, limit, offset int) ([]*models.Process, error)
	Count(ctx context.Context) (int, error)
	ClaimQueued(ctx context.Context, limit int) ([]*models.Process, error)
	UpdateProgress(ctx context.Context, p *models.Process) error
	DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type processRepo struct {
	db Database
}

func NewProcessRepo(db Database) ProcessRepository {
	return &processRepo{db: db}
}

const processColumns = `id, type, status, file_key, total_rows, processed_rows, failed_rows, errors, created_by, created_at, updated_at, completed_at`

func (r *processRepo) scan(row interface{ Scan(...any) error }) (*models.Process, error) {
	p := &models.Process{}
	err := row.Scan(&p.ID, &p.Type, &p.Status, &p.FileKey, &p.TotalRows, &p.ProcessedRows,
		&p.FailedRows, &p.Errors, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt, &p.CompletedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *processRepo) Create(ctx context.Context, p *models.Process) error {
	query := `
		INSERT INTO processes (id, type, status, file_key, total_rows, processed_rows, failed_rows, errors, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, 0, 0, '[]', $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, p.ID, p.Type, p.Status, p.FileKey, p.CreatedBy).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *processRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Process, error) {
	return r.scan(r.db.QueryRow(ctx, `SELECT `+processColumns+` FROM processes WHERE id = $1`, id))
}

func (r *processRepo) List(ctx context.Context, limit, offset int) ([]*models.Process, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+processColumns+` FROM processes ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var processes []*models.Process
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		processes = append(processes, p)
	}
	return processes, rows.Err()
}

func (r *processRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM processes`).Scan(&count)
	return count, err
}

// ClaimQueued flips up to limit queued processes to processing and returns
// them. SKIP LOCKED keeps two runner instances from claiming the same rows.
func (r *processRepo) ClaimQueued(ctx context.Context, limit int) ([]*models.Process, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE processes SET status = $1, updated_at = NOW()
		WHERE id IN (
			SELECT id FROM processes WHERE status = $2
			ORDER BY created_at ASC
			LIMIT $3
			FOR UPDATE SKIP LOCKED
		)
		RETURNING `+processColumns, models.ProcessStatusProcessing, models.ProcessStatusQueued, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claimed []*models.Process
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		claimed = append(claimed, p)
	}
	return claimed, rows.Err()
}

func (r *processRepo) UpdateProgress(ctx context.Context, p *models.Process) error {
	query := `
		UPDATE processes
		SET status = $1, total_rows = $2, processed_rows = $3, failed_rows = $4, errors = $5,
		    completed_at = $6, updated_at = NOW()
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query, p.Status, p.TotalRows, p.ProcessedRows, p.FailedRows,
		p.Errors, p.CompletedAt, p.ID)
	return err
}

func (r *processRepo) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM processes
		WHERE completed_at IS NOT NULL AND completed_at < $1
	`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
