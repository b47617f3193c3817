package models

import "time"

// Category is a node in the catalog category forest. Data, URLs and Stores
// are stored as jsonb columns; Children is rebuilt in memory from parent_id
// and never persisted directly.
type Category struct {
	ID        int64          `json:"id" db:"id"`
	ParentID  *int64         `json:"parent_id" db:"parent_id"`
	Level     int            `json:"level" db:"level"`
	Position  int            `json:"position" db:"position"`
	ErpID     *string        `json:"erp_id,omitempty" db:"erp_id"`
	Data      []CategoryData `json:"data" db:"data"`
	URLs      []CategoryURL  `json:"urls" db:"urls"`
	Stores    []int64        `json:"stores" db:"stores"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
	Children  []*Category    `json:"children,omitempty" db:"-"`
}

// CategoryData is the per-language content of a category. One entry is
// expected per supported language but completeness is not guaranteed.
type CategoryData struct {
	LanguageID         int64  `json:"language_id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	MetaTitle          string `json:"meta_title"`
	MetaDescription    string `json:"meta_description"`
	IsCategoryDiscount bool   `json:"is_category_discount"`
}

// CategoryURL is the per-language URL of a category. FullURL is derived by
// joining ancestor url segments with "/".
type CategoryURL struct {
	LanguageID int64  `json:"language_id"`
	URL        string `json:"url"`
	FullURL    string `json:"full_url"`
}

// DataFor returns the content entry for the given language, or nil when the
// category has no entry for it.
func (c *Category) DataFor(languageID int64) *CategoryData {
	for i := range c.Data {
		if c.Data[i].LanguageID == languageID {
			return &c.Data[i]
		}
	}
	return nil
}

// URLFor returns the URL entry for the given language, or nil.
func (c *Category) URLFor(languageID int64) *CategoryURL {
	for i := range c.URLs {
		if c.URLs[i].LanguageID == languageID {
			return &c.URLs[i]
		}
	}
	return nil
}
