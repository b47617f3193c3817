package models

import (
	"time"

	"github.com/google/uuid"
)

// Process types.
const (
	ProcessTypeStockUpdate = "stock_update"
	ProcessTypeOrderStatus = "order_status"
)

// Process statuses.
const (
	ProcessStatusQueued     = "queued"
	ProcessStatusProcessing = "processing"
	ProcessStatusCompleted  = "completed"
	ProcessStatusPartial    = "partial"
	ProcessStatusFailed     = "failed"
)

// Process is a file-driven bulk operation: an uploaded CSV applied to
// products (stock) or orders (status) by the background runner.
type Process struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	Type          string         `json:"type" db:"type"`
	Status        string         `json:"status" db:"status"`
	FileKey       string         `json:"file_key" db:"file_key"`
	TotalRows     int            `json:"total_rows" db:"total_rows"`
	ProcessedRows int            `json:"processed_rows" db:"processed_rows"`
	FailedRows    int            `json:"failed_rows" db:"failed_rows"`
	Errors        []ProcessError `json:"errors,omitempty" db:"errors"`
	CreatedBy     *uuid.UUID     `json:"created_by,omitempty" db:"created_by"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty" db:"completed_at"`
}

// ProcessError records why one row of the uploaded file was rejected.
type ProcessError struct {
	RowIndex int    `json:"row_index"`
	Error    string `json:"error"`
}

// ValidProcessType reports whether t is a supported process type.
func ValidProcessType(t string) bool {
	return t == ProcessTypeStockUpdate || t == ProcessTypeOrderStatus
}
