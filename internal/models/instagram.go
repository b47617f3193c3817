package models

import "time"

// InstagramLayout is the instagram grid section of the home page.
type InstagramLayout struct {
	ID        int64            `json:"id" db:"id"`
	Name      string           `json:"name" db:"name"`
	Active    bool             `json:"active" db:"active"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" db:"updated_at"`
	Items     []*InstagramItem `json:"items,omitempty" db:"-"`
}

// InstagramItem is one tile of an instagram layout.
type InstagramItem struct {
	ID        int64     `json:"id" db:"id"`
	LayoutID  int64     `json:"layout_id" db:"layout_id"`
	Position  int       `json:"position" db:"position"`
	URL       string    `json:"url" db:"url"`
	ImageKey  string    `json:"image_key" db:"image_key"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
