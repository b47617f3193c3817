package models

import "time"

// Feature is a highlighted selling point shown on product or home pages.
type Feature struct {
	ID        int64         `json:"id" db:"id"`
	Active    bool          `json:"active" db:"active"`
	Position  int           `json:"position" db:"position"`
	Icon      string        `json:"icon" db:"icon"`
	Data      []FeatureData `json:"data" db:"data"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// FeatureData is the per-language content of a feature.
type FeatureData struct {
	LanguageID  int64  `json:"language_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
