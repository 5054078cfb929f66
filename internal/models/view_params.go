package models

import "strings"

// SortOrder is the direction of a table sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sortable product fields.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldPrice    = "price"
	FieldCategory = "category"
	FieldStock    = "stock"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// IsSortField reports whether f names a sortable product field.
func IsSortField(f string) bool {
	switch f {
	case FieldID, FieldName, FieldPrice, FieldCategory, FieldStock:
		return true
	}
	return false
}

// ParseSortOrder maps "desc" (any case) to SortDesc and everything else to SortAsc.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// ViewParams are the query parameters of a table fetch.
type ViewParams struct {
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	SortField  string    `json:"sort_field,omitempty"` // "" means unsorted
	SortOrder  SortOrder `json:"sort_order"`
	FilterText string    `json:"filter_text"`
}

// DefaultViewParams returns the parameters of a fresh dashboard.
func DefaultViewParams() ViewParams {
	return ViewParams{
		Page:      DefaultPage,
		PageSize:  DefaultPageSize,
		SortOrder: SortAsc,
	}
}
