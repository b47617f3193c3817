package repositories

import (
	"context"

	"backoffice/internal/models"
)

type OrderRepository interface {
	GetByNumber(ctx context.Context, number string) (*models.Order, error)
	UpdateStatusByNumber(ctx context.Context, number, status string) (bool, error)
}

type orderRepo struct {
	db Database
}

func NewOrderRepo(db Database) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) GetByNumber(ctx context.Context, number string) (*models.Order, error) {
	order := &models.Order{}
	err := r.db.QueryRow(ctx,
		`SELECT id, number, status, created_at, updated_at FROM orders WHERE number = $1`, number).
		Scan(&order.ID, &order.Number, &order.Status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatusByNumber sets the status for the order with the given number.
// Returns false when no order matches.
func (r *orderRepo) UpdateStatusByNumber(ctx context.Context, number, status string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE number = $2`, status, number)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
