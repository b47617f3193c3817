package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"backoffice/internal/common"
	"backoffice/internal/models"
)

type HomeWebRepository interface {
	List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.HomeWeb, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int64) (*models.HomeWeb, error)
	Create(ctx context.Context, h *models.HomeWeb) error
	Update(ctx context.Context, h *models.HomeWeb) error
	Delete(ctx context.Context, id int64) error
	ReplaceLayouts(ctx context.Context, homeWebID int64, layouts []*models.LayoutHomeWeb) error
}

type homeWebRepo struct {
	db Database
}

func NewHomeWebRepo(db Database) HomeWebRepository {
	return &homeWebRepo{db: db}
}

func (r *homeWebRepo) List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.HomeWeb, error) {
	query := fmt.Sprintf(
		`SELECT id, name, active, stores, created_at, updated_at FROM home_webs ORDER BY %s LIMIT $1 OFFSET $2`,
		sort.OrderClause())
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*models.HomeWeb
	for rows.Next() {
		h := &models.HomeWeb{}
		if err := rows.Scan(&h.ID, &h.Name, &h.Active, &h.Stores, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		pages = append(pages, h)
	}
	return pages, rows.Err()
}

func (r *homeWebRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM home_webs`).Scan(&count)
	return count, err
}

func (r *homeWebRepo) GetByID(ctx context.Context, id int64) (*models.HomeWeb, error) {
	h := &models.HomeWeb{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, active, stores, created_at, updated_at FROM home_webs WHERE id = $1`, id).
		Scan(&h.ID, &h.Name, &h.Active, &h.Stores, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, home_web_id, block_type, resource_id, position, created_at, updated_at
		FROM layout_home_webs
		WHERE home_web_id = $1
		ORDER BY position ASC, id ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		l := &models.LayoutHomeWeb{}
		if err := rows.Scan(&l.ID, &l.HomeWebID, &l.BlockType, &l.ResourceID, &l.Position,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		h.Layouts = append(h.Layouts, l)
	}
	return h, rows.Err()
}

func (r *homeWebRepo) Create(ctx context.Context, h *models.HomeWeb) error {
	query := `
		INSERT INTO home_webs (name, active, stores, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, h.Name, h.Active, h.Stores).
		Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

func (r *homeWebRepo) Update(ctx context.Context, h *models.HomeWeb) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE home_webs SET name = $1, active = $2, stores = $3, updated_at = NOW() WHERE id = $4`,
		h.Name, h.Active, h.Stores, h.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *homeWebRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM home_webs WHERE id = $1`, id)
	return err
}

// ReplaceLayouts swaps the ordered block list of a home page wholesale, the
// way the admin form submits it, inside one transaction.
func (r *homeWebRepo) ReplaceLayouts(ctx context.Context, homeWebID int64, layouts []*models.LayoutHomeWeb) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM layout_home_webs WHERE home_web_id = $1`, homeWebID); err != nil {
		return err
	}
	for i, l := range layouts {
		_, err := tx.Exec(ctx, `
			INSERT INTO layout_home_webs (home_web_id, block_type, resource_id, position, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
		`, homeWebID, l.BlockType, l.ResourceID, i)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
