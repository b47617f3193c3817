package models

import "time"

// Announcement is a storefront announcement bar entry with per-language
// content.
type Announcement struct {
	ID        int64              `json:"id" db:"id"`
	Active    bool               `json:"active" db:"active"`
	StartsAt  *time.Time         `json:"starts_at,omitempty" db:"starts_at"`
	EndsAt    *time.Time         `json:"ends_at,omitempty" db:"ends_at"`
	Data      []AnnouncementData `json:"data" db:"data"`
	Stores    []int64            `json:"stores" db:"stores"`
	CreatedAt time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" db:"updated_at"`
}

// AnnouncementData is the per-language content of an announcement.
type AnnouncementData struct {
	LanguageID int64  `json:"language_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	URL        string `json:"url"`
}
