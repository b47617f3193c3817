package models

import "time"

// MidBanner is the banner block shown in the middle of the home page.
type MidBanner struct {
	ID        int64           `json:"id" db:"id"`
	Active    bool            `json:"active" db:"active"`
	Data      []MidBannerData `json:"data" db:"data"`
	Stores    []int64         `json:"stores" db:"stores"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// MidBannerData is the per-language content of a mid banner.
type MidBannerData struct {
	LanguageID int64  `json:"language_id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	URL        string `json:"url"`
	ImageKey   string `json:"image_key"`
}
