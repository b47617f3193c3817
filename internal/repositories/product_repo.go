package repositories

import (
	"context"
	"fmt"

	"backoffice/internal/common"
	"backoffice/internal/models"
)

type ProductRepository interface {
	List(ctx context.Context, filter models.CategoryProductFilter, sort common.Sort, limit, offset int) ([]*models.Product, error)
	Count(ctx context.Context, filter models.CategoryProductFilter) (int, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateStockByReference(ctx context.Context, reference string, stock int) (bool, error)
}

type productRepo struct {
	db Database
}

func NewProductRepo(db Database) ProductRepository {
	return &productRepo{db: db}
}

func productFilterClause(filter models.CategoryProductFilter, args *[]any) string {
	clause := ""
	if filter.Status != nil {
		*args = append(*args, *filter.Status)
		clause += fmt.Sprintf(" AND status = $%d", len(*args))
	}
	if filter.Name != "" {
		*args = append(*args, "%"+filter.Name+"%")
		clause += fmt.Sprintf(" AND name ILIKE $%d", len(*args))
	}
	if filter.Reference != "" {
		*args = append(*args, "%"+filter.Reference+"%")
		clause += fmt.Sprintf(" AND reference ILIKE $%d", len(*args))
	}
	return clause
}

func (r *productRepo) List(ctx context.Context, filter models.CategoryProductFilter, sort common.Sort, limit, offset int) ([]*models.Product, error) {
	var args []any
	query := `SELECT id, name, reference, status, stock, created_at, updated_at FROM products WHERE 1=1`
	query += productFilterClause(filter, &args)

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", sort.OrderClause(), len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p := &models.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Reference, &p.Status, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepo) Count(ctx context.Context, filter models.CategoryProductFilter) (int, error) {
	var args []any
	query := `SELECT COUNT(*) FROM products WHERE 1=1` + productFilterClause(filter, &args)
	var count int
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	p := &models.Product{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, reference, status, stock, created_at, updated_at FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Reference, &p.Status, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateStockByReference sets the absolute stock for the product with the
// given SKU. Returns false when no product matches.
func (r *productRepo) UpdateStockByReference(ctx context.Context, reference string, stock int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET stock = $1, updated_at = NOW() WHERE reference = $2`, stock, reference)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
