package models

import "time"

// Layout block types composable on the home page.
const (
	HomeBlockSlider    = "slider"
	HomeBlockInstagram = "instagram"
	HomeBlockMidBanner = "mid_banner"
	HomeBlockCategory  = "category"
)

// HomeWeb is a home page definition. Only one definition is active per
// store at a time; the active one drives the storefront.
type HomeWeb struct {
	ID        int64            `json:"id" db:"id"`
	Name      string           `json:"name" db:"name"`
	Active    bool             `json:"active" db:"active"`
	Stores    []int64          `json:"stores" db:"stores"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" db:"updated_at"`
	Layouts   []*LayoutHomeWeb `json:"layouts,omitempty" db:"-"`
}

// LayoutHomeWeb is one ordered block of a home page definition. ResourceID
// points at the record of BlockType (slider id, mid banner id, ...).
type LayoutHomeWeb struct {
	ID         int64     `json:"id" db:"id"`
	HomeWebID  int64     `json:"home_web_id" db:"home_web_id"`
	BlockType  string    `json:"block_type" db:"block_type"`
	ResourceID int64     `json:"resource_id" db:"resource_id"`
	Position   int       `json:"position" db:"position"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
