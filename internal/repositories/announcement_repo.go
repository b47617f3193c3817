package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"backoffice/internal/common"
	"backoffice/internal/models"
)

type AnnouncementRepository interface {
	List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.Announcement, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int64) (*models.Announcement, error)
	Create(ctx context.Context, a *models.Announcement) error
	Update(ctx context.Context, a *models.Announcement) error
	Delete(ctx context.Context, id int64) error
}

type announcementRepo struct {
	db Database
}

func NewAnnouncementRepo(db Database) AnnouncementRepository {
	return &announcementRepo{db: db}
}

const announcementColumns = `id, active, starts_at, ends_at, data, stores, created_at, updated_at`

func (r *announcementRepo) scan(row interface{ Scan(...any) error }) (*models.Announcement, error) {
	a := &models.Announcement{}
	err := row.Scan(&a.ID, &a.Active, &a.StartsAt, &a.EndsAt, &a.Data, &a.Stores, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *announcementRepo) List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.Announcement, error) {
	query := fmt.Sprintf(`SELECT %s FROM announcements ORDER BY %s LIMIT $1 OFFSET $2`,
		announcementColumns, sort.OrderClause())
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

func (r *announcementRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM announcements`).Scan(&count)
	return count, err
}

func (r *announcementRepo) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	query := fmt.Sprintf(`SELECT %s FROM announcements WHERE id = $1`, announcementColumns)
	return r.scan(r.db.QueryRow(ctx, query, id))
}

func (r *announcementRepo) Create(ctx context.Context, a *models.Announcement) error {
	query := `
		INSERT INTO announcements (active, starts_at, ends_at, data, stores, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, a.Active, a.StartsAt, a.EndsAt, a.Data, a.Stores).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *announcementRepo) Update(ctx context.Context, a *models.Announcement) error {
	query := `
		UPDATE announcements
		SET active = $1, starts_at = $2, ends_at = $3, data = $4, stores = $5, updated_at = NOW()
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query, a.Active, a.StartsAt, a.EndsAt, a.Data, a.Stores, a.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *announcementRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	return err
}
