package models

import "time"

// Language represents a storefront language. The list is loaded once at
// startup and cached; every translated resource references languages by id.
type Language struct {
	ID        int64     `json:"id" db:"id"`
	ISO       string    `json:"iso" db:"iso"`
	Language  string    `json:"language" db:"language"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
