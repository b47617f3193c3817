package models

// Pagination describes the position of a page inside a full result set. Page
// is the 1-based wire page number.
type Pagination struct {
	TotalItems int `json:"totalItems"`
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalPages int `json:"totalPages"`
}

// Paginated is the envelope returned by every list endpoint.
type Paginated[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// NewPaginated builds the envelope from a page of items and the total count.
// wirePage is 1-based.
func NewPaginated[T any](items []T, total, wirePage, perPage int) *Paginated[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return &Paginated[T]{
		Items: items,
		Pagination: Pagination{
			TotalItems: total,
			Page:       wirePage,
			PerPage:    perPage,
			TotalPages: totalPages,
		},
	}
}
