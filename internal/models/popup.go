package models

import "time"

// Popup is a promotional popup with per-language content and an optional
// image stored in object storage.
type Popup struct {
	ID        int64       `json:"id" db:"id"`
	Active    bool        `json:"active" db:"active"`
	StartsAt  *time.Time  `json:"starts_at,omitempty" db:"starts_at"`
	EndsAt    *time.Time  `json:"ends_at,omitempty" db:"ends_at"`
	Data      []PopupData `json:"data" db:"data"`
	Stores    []int64     `json:"stores" db:"stores"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// PopupData is the per-language content of a popup. ImageKey is the object
// storage key of the uploaded image.
type PopupData struct {
	LanguageID int64  `json:"language_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	URL        string `json:"url"`
	ImageKey   string `json:"image_key"`
}
