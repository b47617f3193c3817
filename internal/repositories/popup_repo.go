package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"backoffice/internal/common"
	"backoffice/internal/models"
)

type PopupRepository interface {
	List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.Popup, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int64) (*models.Popup, error)
	Create(ctx context.Context, p *models.Popup) error
	Update(ctx context.Context, p *models.Popup) error
	Delete(ctx context.Context, id int64) error
}

type popupRepo struct {
	db Database
}

func NewPopupRepo(db Database) PopupRepository {
	return &popupRepo{db: db}
}

const popupColumns = `id, active, starts_at, ends_at, data, stores, created_at, updated_at`

func (r *popupRepo) scan(row interface{ Scan(...any) error }) (*models.Popup, error) {
	p := &models.Popup{}
	err := row.Scan(&p.ID, &p.Active, &p.StartsAt, &p.EndsAt, &p.Data, &p.Stores, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *popupRepo) List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.Popup, error) {
	query := fmt.Sprintf(`SELECT %s FROM popups ORDER BY %s LIMIT $1 OFFSET $2`,
		popupColumns, sort.OrderClause())
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var popups []*models.Popup
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		popups = append(popups, p)
	}
	return popups, rows.Err()
}

func (r *popupRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM popups`).Scan(&count)
	return count, err
}

func (r *popupRepo) GetByID(ctx context.Context, id int64) (*models.Popup, error) {
	query := fmt.Sprintf(`SELECT %s FROM popups WHERE id = $1`, popupColumns)
	return r.scan(r.db.QueryRow(ctx, query, id))
}

func (r *popupRepo) Create(ctx context.Context, p *models.Popup) error {
	query := `
		INSERT INTO popups (active, starts_at, ends_at, data, stores, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, p.Active, p.StartsAt, p.EndsAt, p.Data, p.Stores).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *popupRepo) Update(ctx context.Context, p *models.Popup) error {
	query := `
		UPDATE popups
		SET active = $1, starts_at = $2, ends_at = $3, data = $4, stores = $5, updated_at = NOW()
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query, p.Active, p.StartsAt, p.EndsAt, p.Data, p.Stores, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *popupRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM popups WHERE id = $1`, id)
	return err
}
