package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"backoffice/internal/common"
	"backoffice/internal/models"
)

type MidBannerRepository interface {
	List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.MidBanner, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int64) (*models.MidBanner, error)
	Create(ctx context.Context, b *models.MidBanner) error
	Update(ctx context.Context, b *models.MidBanner) error
	Delete(ctx context.Context, id int64) error
}

type midBannerRepo struct {
	db Database
}

func NewMidBannerRepo(db Database) MidBannerRepository {
	return &midBannerRepo{db: db}
}

const midBannerColumns = `id, active, data, stores, created_at, updated_at`

func (r *midBannerRepo) scan(row interface{ Scan(...any) error }) (*models.MidBanner, error) {
	b := &models.MidBanner{}
	err := row.Scan(&b.ID, &b.Active, &b.Data, &b.Stores, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *midBannerRepo) List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.MidBanner, error) {
	query := fmt.Sprintf(`SELECT %s FROM mid_banners ORDER BY %s LIMIT $1 OFFSET $2`,
		midBannerColumns, sort.OrderClause())
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banners []*models.MidBanner
	for rows.Next() {
		b, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

func (r *midBannerRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM mid_banners`).Scan(&count)
	return count, err
}

func (r *midBannerRepo) GetByID(ctx context.Context, id int64) (*models.MidBanner, error) {
	query := fmt.Sprintf(`SELECT %s FROM mid_banners WHERE id = $1`, midBannerColumns)
	return r.scan(r.db.QueryRow(ctx, query, id))
}

func (r *midBannerRepo) Create(ctx context.Context, b *models.MidBanner) error {
	query := `
		INSERT INTO mid_banners (active, data, stores, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, b.Active, b.Data, b.Stores).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *midBannerRepo) Update(ctx context.Context, b *models.MidBanner) error {
	query := `
		UPDATE mid_banners
		SET active = $1, data = $2, stores = $3, updated_at = NOW()
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, b.Active, b.Data, b.Stores, b.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *midBannerRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM mid_banners WHERE id = $1`, id)
	return err
}
