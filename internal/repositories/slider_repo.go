package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"backoffice/internal/catalog"
	"backoffice/internal/common"
	"backoffice/internal/models"
)

type SliderRepository interface {
	List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.SliderLayout, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int64) (*models.SliderLayout, error)
	Create(ctx context.Context, s *models.SliderLayout) error
	Update(ctx context.Context, s *models.SliderLayout) error
	Delete(ctx context.Context, id int64) error

	ListItems(ctx context.Context, layoutID int64) ([]*models.SliderItem, error)
	GetItemPositions(ctx context.Context, layoutID int64) (map[int64]int, error)
	CreateItem(ctx context.Context, item *models.SliderItem) error
	UpdateItem(ctx context.Context, item *models.SliderItem) error
	DeleteItem(ctx context.Context, layoutID, itemID int64) error
	UpdateItemPositions(ctx context.Context, layoutID int64, updates []catalog.PositionUpdate) error
}

type sliderRepo struct {
	db Database
}

func NewSliderRepo(db Database) SliderRepository {
	return &sliderRepo{db: db}
}

const sliderColumns = `id, name, active, stores, created_at, updated_at`

func (r *sliderRepo) List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.SliderLayout, error) {
	query := fmt.Sprintf(`SELECT %s FROM slider_layouts ORDER BY %s LIMIT $1 OFFSET $2`,
		sliderColumns, sort.OrderClause())
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var layouts []*models.SliderLayout
	for rows.Next() {
		s := &models.SliderLayout{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Active, &s.Stores, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		layouts = append(layouts, s)
	}
	return layouts, rows.Err()
}

func (r *sliderRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM slider_layouts`).Scan(&count)
	return count, err
}

func (r *sliderRepo) GetByID(ctx context.Context, id int64) (*models.SliderLayout, error) {
	s := &models.SliderLayout{}
	query := fmt.Sprintf(`SELECT %s FROM slider_layouts WHERE id = $1`, sliderColumns)
	err := r.db.QueryRow(ctx, query, id).
		Scan(&s.ID, &s.Name, &s.Active, &s.Stores, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	items, err := r.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return s, nil
}

func (r *sliderRepo) Create(ctx context.Context, s *models.SliderLayout) error {
	query := `
		INSERT INTO slider_layouts (name, active, stores, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, s.Name, s.Active, s.Stores).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *sliderRepo) Update(ctx context.Context, s *models.SliderLayout) error {
	query := `
		UPDATE slider_layouts
		SET name = $1, active = $2, stores = $3, updated_at = NOW()
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, s.Name, s.Active, s.Stores, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sliderRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM slider_layouts WHERE id = $1`, id)
	return err
}

func (r *sliderRepo) ListItems(ctx context.Context, layoutID int64) ([]*models.SliderItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, layout_id, position, data, created_at, updated_at
		FROM slider_items
		WHERE layout_id = $1
		ORDER BY position ASC, id ASC
	`, layoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.SliderItem
	for rows.Next() {
		item := &models.SliderItem{}
		if err := rows.Scan(&item.ID, &item.LayoutID, &item.Position, &item.Data, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *sliderRepo) GetItemPositions(ctx context.Context, layoutID int64) (map[int64]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, position FROM slider_items WHERE layout_id = $1`, layoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := make(map[int64]int)
	for rows.Next() {
		var id int64
		var position int
		if err := rows.Scan(&id, &position); err != nil {
			return nil, err
		}
		positions[id] = position
	}
	return positions, rows.Err()
}

func (r *sliderRepo) CreateItem(ctx context.Context, item *models.SliderItem) error {
	query := `
		INSERT INTO slider_items (layout_id, position, data, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, item.LayoutID, item.Position, item.Data).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *sliderRepo) UpdateItem(ctx context.Context, item *models.SliderItem) error {
	query := `
		UPDATE slider_items
		SET position = $1, data = $2, updated_at = NOW()
		WHERE id = $3 AND layout_id = $4
	`
	tag, err := r.db.Exec(ctx, query, item.Position, item.Data, item.ID, item.LayoutID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sliderRepo) DeleteItem(ctx context.Context, layoutID, itemID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM slider_items WHERE id = $1 AND layout_id = $2`, itemID, layoutID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("slider item %d not found in layout %d", itemID, layoutID)
	}
	return nil
}

func (r *sliderRepo) UpdateItemPositions(ctx context.Context, layoutID int64, updates []catalog.PositionUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, u := range updates {
		tag, err := tx.Exec(ctx,
			`UPDATE slider_items SET position = $1, updated_at = NOW() WHERE id = $2 AND layout_id = $3`,
			u.Position, u.ID, layoutID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("slider item %d not found in layout %d", u.ID, layoutID)
		}
	}
	return tx.Commit(ctx)
}
