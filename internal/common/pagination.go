package common

import "fmt"

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListParams is the one internal pagination and sort shape every list
// endpoint binds to. Page is 0-based as the admin UI counts pages; the
// 1-based wire page is derived, never stored. Legacy clients sent sort as
// sortBy/sortDir on some resources and orderBy/order on others; both pairs
// bind here so the inconsistency stays at this boundary.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"perPage"`
	SortBy  string `query:"sortBy"`
	SortDir string `query:"sortDir"`
	OrderBy string `query:"orderBy"`
	Order   string `query:"order"`
}

// Sort is the unified {field, direction} pair used below the handler layer.
type Sort struct {
	Field     string
	Direction string
}

// Normalize applies defaults and caps. perPage defaults to 25, capped at
// 100; negative pages clamp to 0.
func (p *ListParams) Normalize() {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.PerPage <= 0 {
		p.PerPage = 25
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// WirePage translates the 0-based UI page to the 1-based wire page:
// max(1, page+1).
func (p *ListParams) WirePage() int {
	if p.Page < 0 {
		return 1
	}
	return p.Page + 1
}

// Offset is the row offset for the current page.
func (p *ListParams) Offset() int {
	if p.Page < 0 {
		return 0
	}
	return p.Page * p.PerPage
}

// SortFor resolves the requested sort against a per-resource column
// allowlist, preferring the sortBy/sortDir pair when both pairs are sent.
// Unknown fields fall back to fallbackField; anything but "desc" sorts asc.
func (p *ListParams) SortFor(allowed map[string]string, fallbackField string) Sort {
	field := p.SortBy
	dir := p.SortDir
	if field == "" {
		field = p.OrderBy
		dir = p.Order
	}

	column, ok := allowed[field]
	if !ok {
		column = allowed[fallbackField]
		if column == "" {
			column = fallbackField
		}
	}

	if dir != SortDesc {
		dir = SortAsc
	}
	return Sort{Field: column, Direction: dir}
}

// OrderClause renders the sort as a SQL ORDER BY fragment. Field comes from
// an allowlist, direction from the two constants, so the fragment is safe to
// interpolate.
func (s Sort) OrderClause() string {
	dir := "ASC"
	if s.Direction == SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s", s.Field, dir)
}
