package models

import "time"

// Product statuses.
const (
	ProductStatusDraft   = "draft"
	ProductStatusEnabled = "enabled"
)

// Product carries the fields the back office needs for category placement
// and stock updates. The full product record lives in the storefront schema.
type Product struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Reference string    `json:"reference" db:"reference"`
	Status    string    `json:"status" db:"status"`
	Stock     int       `json:"stock" db:"stock"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Pivot is the category-product association payload. Position defines the
// order of a product inside a category.
type Pivot struct {
	Position int `json:"position"`
}

// CategoryProduct is a product together with its placement pivot inside one
// category.
type CategoryProduct struct {
	Product
	Pivot Pivot `json:"pivot"`
}

// CategoryProductFilter narrows a category product listing. Name and
// Reference are case-insensitive substring matches; all set filters are
// combined with AND.
type CategoryProductFilter struct {
	Status    *string
	Name      string
	Reference string
}
