package repositories

import (
	"context"
	"fmt"

	"backoffice/internal/catalog"
	"backoffice/internal/models"
)

type CategoryProductRepository interface {
	ListByCategory(ctx context.Context, categoryID int64, filter models.CategoryProductFilter) ([]*models.CategoryProduct, error)
	GetPositions(ctx context.Context, categoryID int64) (map[int64]int, error)
	UpdatePosition(ctx context.Context, categoryID, productID int64, position int) error
	UpdatePositions(ctx context.Context, categoryID int64, updates []catalog.PositionUpdate) error
	Attach(ctx context.Context, categoryID, productID int64, position int) error
	Detach(ctx context.Context, categoryID, productID int64) error
	BulkDetach(ctx context.Context, categoryID int64, productIDs []int64) error
}

type categoryProductRepo struct {
	db Database
}

func NewCategoryProductRepo(db Database) CategoryProductRepository {
	return &categoryProductRepo{db: db}
}

// ListByCategory returns the category's products ordered by pivot position.
// Filters are case-insensitive substring matches combined with AND.
func (r *categoryProductRepo) ListByCategory(ctx context.Context, categoryID int64, filter models.CategoryProductFilter) ([]*models.CategoryProduct, error) {
	query := `
		SELECT p.id, p.name, p.reference, p.status, p.stock, p.created_at, p.updated_at, cp.position
		FROM category_products cp
		JOIN products p ON p.id = cp.product_id
		WHERE cp.category_id = $1
	`
	args := []any{categoryID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND p.status = $%d", len(args))
	}
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		query += fmt.Sprintf(" AND p.name ILIKE $%d", len(args))
	}
	if filter.Reference != "" {
		args = append(args, "%"+filter.Reference+"%")
		query += fmt.Sprintf(" AND p.reference ILIKE $%d", len(args))
	}
	query += " ORDER BY cp.position ASC, p.id ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.CategoryProduct
	for rows.Next() {
		cp := &models.CategoryProduct{}
		if err := rows.Scan(&cp.ID, &cp.Name, &cp.Reference, &cp.Status, &cp.Stock,
			&cp.CreatedAt, &cp.UpdatedAt, &cp.Pivot.Position); err != nil {
			return nil, err
		}
		products = append(products, cp)
	}
	return products, rows.Err()
}

func (r *categoryProductRepo) GetPositions(ctx context.Context, categoryID int64) (map[int64]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT product_id, position FROM category_products WHERE category_id = $1`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := make(map[int64]int)
	for rows.Next() {
		var productID int64
		var position int
		if err := rows.Scan(&productID, &position); err != nil {
			return nil, err
		}
		positions[productID] = position
	}
	return positions, rows.Err()
}

func (r *categoryProductRepo) UpdatePosition(ctx context.Context, categoryID, productID int64, position int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE category_products SET position = $1 WHERE category_id = $2 AND product_id = $3`,
		position, categoryID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d is not assigned to category %d", productID, categoryID)
	}
	return nil
}

// UpdatePositions applies a position diff in one transaction. The caller
// passes only changed rows; nothing is written when the diff is empty.
func (r *categoryProductRepo) UpdatePositions(ctx context.Context, categoryID int64, updates []catalog.PositionUpdate) error {
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
			`UPDATE category_products SET position = $1 WHERE category_id = $2 AND product_id = $3`,
			u.Position, categoryID, u.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("product %d is not assigned to category %d", u.ID, categoryID)
		}
	}
	return tx.Commit(ctx)
}

func (r *categoryProductRepo) Attach(ctx context.Context, categoryID, productID int64, position int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO category_products (category_id, product_id, position)
		VALUES ($1, $2, $3)
		ON CONFLICT (category_id, product_id) DO NOTHING
	`, categoryID, productID, position)
	return err
}

func (r *categoryProductRepo) Detach(ctx context.Context, categoryID, productID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM category_products WHERE category_id = $1 AND product_id = $2`, categoryID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d is not assigned to category %d", productID, categoryID)
	}
	return nil
}

func (r *categoryProductRepo) BulkDetach(ctx context.Context, categoryID int64, productIDs []int64) error {
	if len(productIDs) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx,
		`DELETE FROM category_products WHERE category_id = $1 AND product_id = ANY($2)`, categoryID, productIDs)
	return err
}
