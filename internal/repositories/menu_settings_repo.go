package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"backoffice/internal/catalog"
	"backoffice/internal/models"
)

type MenuSettingsRepository interface {
	List(ctx context.Context) ([]*models.MenuSetting, error)
	GetByID(ctx context.Context, id int64) (*models.MenuSetting, error)
	Create(ctx context.Context, m *models.MenuSetting) error
	Update(ctx context.Context, m *models.MenuSetting) error
	Delete(ctx context.Context, id int64) error
	UpdatePositions(ctx context.Context, updates []catalog.PositionUpdate) error
}

type menuSettingsRepo struct {
	db Database
}

func NewMenuSettingsRepo(db Database) MenuSettingsRepository {
	return &menuSettingsRepo{db: db}
}

const menuSettingColumns = `id, url, position, active, data, created_at, updated_at`

// List returns every menu entry in display order. The menu is small; it is
// never paginated.
func (r *menuSettingsRepo) List(ctx context.Context) ([]*models.MenuSetting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+menuSettingColumns+` FROM menu_settings ORDER BY position ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.MenuSetting
	for rows.Next() {
		m := &models.MenuSetting{}
		if err := rows.Scan(&m.ID, &m.URL, &m.Position, &m.Active, &m.Data, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, m)
	}
	return entries, rows.Err()
}

func (r *menuSettingsRepo) GetByID(ctx context.Context, id int64) (*models.MenuSetting, error) {
	m := &models.MenuSetting{}
	err := r.db.QueryRow(ctx,
		`SELECT `+menuSettingColumns+` FROM menu_settings WHERE id = $1`, id).
		Scan(&m.ID, &m.URL, &m.Position, &m.Active, &m.Data, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *menuSettingsRepo) Create(ctx context.Context, m *models.MenuSetting) error {
	query := `
		INSERT INTO menu_settings (url, position, active, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, m.URL, m.Position, m.Active, m.Data).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *menuSettingsRepo) Update(ctx context.Context, m *models.MenuSetting) error {
	query := `
		UPDATE menu_settings
		SET url = $1, position = $2, active = $3, data = $4, updated_at = NOW()
		WHERE id = $5
	`
	tag, err := r.db.Exec(ctx, query, m.URL, m.Position, m.Active, m.Data, m.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *menuSettingsRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM menu_settings WHERE id = $1`, id)
	return err
}

func (r *menuSettingsRepo) UpdatePositions(ctx context.Context, updates []catalog.PositionUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, u := range updates {
		if _, err := tx.Exec(ctx,
			`UPDATE menu_settings SET position = $1, updated_at = NOW() WHERE id = $2`, u.Position, u.ID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
