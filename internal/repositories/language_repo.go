package repositories

import (
	"context"

	"backoffice/internal/models"
)

type LanguageRepository interface {
	List(ctx context.Context) ([]*models.Language, error)
	GetByID(ctx context.Context, id int64) (*models.Language, error)
}

type languageRepo struct {
	db Database
}

func NewLanguageRepo(db Database) LanguageRepository {
	return &languageRepo{db: db}
}

func (r *languageRepo) List(ctx context.Context) ([]*models.Language, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, iso, language, created_at, updated_at FROM languages ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var languages []*models.Language
	for rows.Next() {
		lang := &models.Language{}
		if err := rows.Scan(&lang.ID, &lang.ISO, &lang.Language, &lang.CreatedAt, &lang.UpdatedAt); err != nil {
			return nil, err
		}
		languages = append(languages, lang)
	}
	return languages, rows.Err()
}

func (r *languageRepo) GetByID(ctx context.Context, id int64) (*models.Language, error) {
	lang := &models.Language{}
	err := r.db.QueryRow(ctx,
		`SELECT id, iso, language, created_at, updated_at FROM languages WHERE id = $1`, id).
		Scan(&lang.ID, &lang.ISO, &lang.Language, &lang.CreatedAt, &lang.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return lang, nil
}
