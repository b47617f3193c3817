package models

import "time"

// Order statuses accepted by the order-status bulk process.
var ValidOrderStatuses = map[string]bool{
	"pending":    true,
	"processing": true,
	"shipped":    true,
	"delivered":  true,
	"cancelled":  true,
}

// Order carries the fields the back office needs for order-status bulk
// updates.
type Order struct {
	ID        int64     `json:"id" db:"id"`
	Number    string    `json:"number" db:"number"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
