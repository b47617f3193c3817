package repositories

import (
	"context"
	"fmt"

	"backoffice/internal/catalog"
	"backoffice/internal/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]*models.Category, error)
	CountChildren(ctx context.Context, id int64) (int, error)
	UpdatePositions(ctx context.Context, updates []catalog.PositionUpdate) error
	UpdateHierarchy(ctx context.Context, categories []*models.Category) error
}

type categoryRepo struct {
	db Database
}

func NewCategoryRepo(db Database) CategoryRepository {
	return &categoryRepo{db: db}
}

const categoryColumns = `id, parent_id, level, position, erp_id, data, urls, stores, created_at, updated_at`

func (r *categoryRepo) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (parent_id, level, position, erp_id, data, urls, stores, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, category.ParentID, category.Level, category.Position,
		category.ErpID, category.Data, category.URLs, category.Stores).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *categoryRepo) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	category := &models.Category{}
	query := fmt.Sprintf(`SELECT %s FROM categories WHERE id = $1`, categoryColumns)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID, &category.ParentID, &category.Level, &category.Position, &category.ErpID,
		&category.Data, &category.URLs, &category.Stores, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (r *categoryRepo) Update(ctx context.Context, category *models.Category) error {
	query := `
		UPDATE categories
		SET parent_id = $1, level = $2, position = $3, erp_id = $4, data = $5, urls = $6, stores = $7, updated_at = NOW()
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query, category.ParentID, category.Level, category.Position,
		category.ErpID, category.Data, category.URLs, category.Stores, category.ID)
	return err
}

func (r *categoryRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}

func (r *categoryRepo) ListAll(ctx context.Context) ([]*models.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories ORDER BY level ASC, position ASC, id ASC`, categoryColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category := &models.Category{}
		if err := rows.Scan(
			&category.ID, &category.ParentID, &category.Level, &category.Position, &category.ErpID,
			&category.Data, &category.URLs, &category.Stores, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *categoryRepo) CountChildren(ctx context.Context, id int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE parent_id = $1`, id).Scan(&count)
	return count, err
}

// UpdatePositions writes a batch of sibling positions in one transaction so
// a partial failure never leaves the order half applied.
func (r *categoryRepo) UpdatePositions(ctx context.Context, updates []catalog.PositionUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, u := range updates {
		tag, err := tx.Exec(ctx, `UPDATE categories SET position = $1, updated_at = NOW() WHERE id = $2`, u.Position, u.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("category %d not found", u.ID)
		}
	}
	return tx.Commit(ctx)
}

// UpdateHierarchy persists recomputed level and urls for a reparented
// subtree in one transaction.
func (r *categoryRepo) UpdateHierarchy(ctx context.Context, categories []*models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, c := range categories {
		_, err := tx.Exec(ctx,
			`UPDATE categories SET parent_id = $1, level = $2, urls = $3, updated_at = NOW() WHERE id = $4`,
			c.ParentID, c.Level, c.URLs, c.ID)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
