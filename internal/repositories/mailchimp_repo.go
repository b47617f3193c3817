package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"backoffice/internal/common"
	"backoffice/internal/models"
)

type MailchimpRepository interface {
	List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.MailchimpCampaign, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int64) (*models.MailchimpCampaign, error)
	Create(ctx context.Context, c *models.MailchimpCampaign) error
	Update(ctx context.Context, c *models.MailchimpCampaign) error
	Delete(ctx context.Context, id int64) error
}

type mailchimpRepo struct {
	db Database
}

func NewMailchimpRepo(db Database) MailchimpRepository {
	return &mailchimpRepo{db: db}
}

const mailchimpColumns = `id, campaign_id, title, list_id, status, sent_at, created_at, updated_at`

func (r *mailchimpRepo) scan(row interface{ Scan(...any) error }) (*models.MailchimpCampaign, error) {
	c := &models.MailchimpCampaign{}
	err := row.Scan(&c.ID, &c.CampaignID, &c.Title, &c.ListID, &c.Status, &c.SentAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *mailchimpRepo) List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.MailchimpCampaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM mailchimp_campaigns ORDER BY %s LIMIT $1 OFFSET $2`,
		mailchimpColumns, sort.OrderClause())
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []*models.MailchimpCampaign
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *mailchimpRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM mailchimp_campaigns`).Scan(&count)
	return count, err
}

func (r *mailchimpRepo) GetByID(ctx context.Context, id int64) (*models.MailchimpCampaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM mailchimp_campaigns WHERE id = $1`, mailchimpColumns)
	return r.scan(r.db.QueryRow(ctx, query, id))
}

func (r *mailchimpRepo) Create(ctx context.Context, c *models.MailchimpCampaign) error {
	query := `
		INSERT INTO mailchimp_campaigns (campaign_id, title, list_id, status, sent_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, c.CampaignID, c.Title, c.ListID, c.Status, c.SentAt).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *mailchimpRepo) Update(ctx context.Context, c *models.MailchimpCampaign) error {
	query := `
		UPDATE mailchimp_campaigns
		SET campaign_id = $1, title = $2, list_id = $3, status = $4, sent_at = $5, updated_at = NOW()
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query, c.CampaignID, c.Title, c.ListID, c.Status, c.SentAt, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *mailchimpRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM mailchimp_campaigns WHERE id = $1`, id)
	return err
}
