package models

import "time"

// MailchimpCampaign is campaign metadata mirrored from the Mailchimp
// account. The account itself is external; only metadata is managed here.
type MailchimpCampaign struct {
	ID         int64      `json:"id" db:"id"`
	CampaignID string     `json:"campaign_id" db:"campaign_id"`
	Title      string     `json:"title" db:"title"`
	ListID     string     `json:"list_id" db:"list_id"`
	Status     string     `json:"status" db:"status"`
	SentAt     *time.Time `json:"sent_at,omitempty" db:"sent_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}
