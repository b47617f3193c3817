package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"backoffice/internal/common"
	"backoffice/internal/models"
)

type FeatureRepository interface {
	List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.Feature, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int64) (*models.Feature, error)
	Create(ctx context.Context, f *models.Feature) error
	Update(ctx context.Context, f *models.Feature) error
	Delete(ctx context.Context, id int64) error
}

type featureRepo struct {
	db Database
}

func NewFeatureRepo(db Database) FeatureRepository {
	return &featureRepo{db: db}
}

const featureColumns = `id, active, position, icon, data, created_at, updated_at`

func (r *featureRepo) scan(row interface{ Scan(...any) error }) (*models.Feature, error) {
	f := &models.Feature{}
	err := row.Scan(&f.ID, &f.Active, &f.Position, &f.Icon, &f.Data, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *featureRepo) List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.Feature, error) {
	query := fmt.Sprintf(`SELECT %s FROM features ORDER BY %s LIMIT $1 OFFSET $2`,
		featureColumns, sort.OrderClause())
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var features []*models.Feature
	for rows.Next() {
		f, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return features, rows.Err()
}

func (r *featureRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM features`).Scan(&count)
	return count, err
}

func (r *featureRepo) GetByID(ctx context.Context, id int64) (*models.Feature, error) {
	query := fmt.Sprintf(`SELECT %s FROM features WHERE id = $1`, featureColumns)
	return r.scan(r.db.QueryRow(ctx, query, id))
}

func (r *featureRepo) Create(ctx context.Context, f *models.Feature) error {
	query := `
		INSERT INTO features (active, position, icon, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, f.Active, f.Position, f.Icon, f.Data).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *featureRepo) Update(ctx context.Context, f *models.Feature) error {
	query := `
		UPDATE features
		SET active = $1, position = $2, icon = $3, data = $4, updated_at = NOW()
		WHERE id = $5
	`
	tag, err := r.db.Exec(ctx, query, f.Active, f.Position, f.Icon, f.Data, f.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *featureRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM features WHERE id = $1`, id)
	return err
}
