package models

import "time"

// SliderLayout is a home page slider. Items are kept in a separate table so
// their positions can be reordered with the same bulk semantics as category
// product pivots.
type SliderLayout struct {
	ID        int64         `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Active    bool          `json:"active" db:"active"`
	Stores    []int64       `json:"stores" db:"stores"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
	Items     []*SliderItem `json:"items,omitempty" db:"-"`
}

// SliderItem is one slide of a slider layout.
type SliderItem struct {
	ID        int64            `json:"id" db:"id"`
	LayoutID  int64            `json:"layout_id" db:"layout_id"`
	Position  int              `json:"position" db:"position"`
	Data      []SliderItemData `json:"data" db:"data"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" db:"updated_at"`
}

// SliderItemData is the per-language content of a slide.
type SliderItemData struct {
	LanguageID int64  `json:"language_id"`
	Alt        string `json:"alt"`
	URL        string `json:"url"`
	ImageKey   string `json:"image_key"`
}
