package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"backoffice/internal/catalog"
	"backoffice/internal/common"
	"backoffice/internal/models"
)

type InstagramRepository interface {
	List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.InstagramLayout, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int64) (*models.InstagramLayout, error)
	Create(ctx context.Context, l *models.InstagramLayout) error
	Update(ctx context.Context, l *models.InstagramLayout) error
	Delete(ctx context.Context, id int64) error

	ListItems(ctx context.Context, layoutID int64) ([]*models.InstagramItem, error)
	GetItemPositions(ctx context.Context, layoutID int64) (map[int64]int, error)
	CreateItem(ctx context.Context, item *models.InstagramItem) error
	UpdateItem(ctx context.Context, item *models.InstagramItem) error
	DeleteItem(ctx context.Context, layoutID, itemID int64) error
	UpdateItemPositions(ctx context.Context, layoutID int64, updates []catalog.PositionUpdate) error
}

type instagramRepo struct {
	db Database
}

func NewInstagramRepo(db Database) InstagramRepository {
	return &instagramRepo{db: db}
}

func (r *instagramRepo) List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.InstagramLayout, error) {
	query := fmt.Sprintf(
		`SELECT id, name, active, created_at, updated_at FROM instagram_layouts ORDER BY %s LIMIT $1 OFFSET $2`,
		sort.OrderClause())
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var layouts []*models.InstagramLayout
	for rows.Next() {
		l := &models.InstagramLayout{}
		if err := rows.Scan(&l.ID, &l.Name, &l.Active, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		layouts = append(layouts, l)
	}
	return layouts, rows.Err()
}

func (r *instagramRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM instagram_layouts`).Scan(&count)
	return count, err
}

func (r *instagramRepo) GetByID(ctx context.Context, id int64) (*models.InstagramLayout, error) {
	l := &models.InstagramLayout{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, active, created_at, updated_at FROM instagram_layouts WHERE id = $1`, id).
		Scan(&l.ID, &l.Name, &l.Active, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	items, err := r.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	l.Items = items
	return l, nil
}

func (r *instagramRepo) Create(ctx context.Context, l *models.InstagramLayout) error {
	query := `
		INSERT INTO instagram_layouts (name, active, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, l.Name, l.Active).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *instagramRepo) Update(ctx context.Context, l *models.InstagramLayout) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE instagram_layouts SET name = $1, active = $2, updated_at = NOW() WHERE id = $3`,
		l.Name, l.Active, l.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *instagramRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM instagram_layouts WHERE id = $1`, id)
	return err
}

func (r *instagramRepo) ListItems(ctx context.Context, layoutID int64) ([]*models.InstagramItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, layout_id, position, url, image_key, created_at, updated_at
		FROM instagram_items
		WHERE layout_id = $1
		ORDER BY position ASC, id ASC
	`, layoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.InstagramItem
	for rows.Next() {
		item := &models.InstagramItem{}
		if err := rows.Scan(&item.ID, &item.LayoutID, &item.Position, &item.URL, &item.ImageKey,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *instagramRepo) GetItemPositions(ctx context.Context, layoutID int64) (map[int64]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, position FROM instagram_items WHERE layout_id = $1`, layoutID)
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

func (r *instagramRepo) CreateItem(ctx context.Context, item *models.InstagramItem) error {
	query := `
		INSERT INTO instagram_items (layout_id, position, url, image_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, item.LayoutID, item.Position, item.URL, item.ImageKey).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *instagramRepo) UpdateItem(ctx context.Context, item *models.InstagramItem) error {
	query := `
		UPDATE instagram_items
		SET position = $1, url = $2, image_key = $3, updated_at = NOW()
		WHERE id = $4 AND layout_id = $5
	`
	tag, err := r.db.Exec(ctx, query, item.Position, item.URL, item.ImageKey, item.ID, item.LayoutID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *instagramRepo) DeleteItem(ctx context.Context, layoutID, itemID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM instagram_items WHERE id = $1 AND layout_id = $2`, itemID, layoutID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("instagram item %d not found in layout %d", itemID, layoutID)
	}
	return nil
}

func (r *instagramRepo) UpdateItemPositions(ctx context.Context, layoutID int64, updates []catalog.PositionUpdate) error {
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
			`UPDATE instagram_items SET position = $1, updated_at = NOW() WHERE id = $2 AND layout_id = $3`,
			u.Position, u.ID, layoutID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("instagram item %d not found in layout %d", u.ID, layoutID)
		}
	}
	return tx.Commit(ctx)
}
