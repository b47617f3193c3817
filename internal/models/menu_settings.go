package models

import "time"

// MenuSetting is one entry of the storefront navigation menu.
type MenuSetting struct {
	ID        int64             `json:"id" db:"id"`
	URL       string            `json:"url" db:"url"`
	Position  int               `json:"position" db:"position"`
	Active    bool              `json:"active" db:"active"`
	Data      []MenuSettingData `json:"data" db:"data"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" db:"updated_at"`
}

// MenuSettingData is the per-language label of a menu entry.
type MenuSettingData struct {
	LanguageID int64  `json:"language_id"`
	Label      string `json:"label"`
}
