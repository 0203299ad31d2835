package item

import (
	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
)

// Filter defines parameters for searching and paginating items.
type Filter struct {
	// UserID restricts results to items owned by the given user.
	UserID *uuid.UUID

	// Role filters by item side (lost/found).
	Role *domain.ItemRole

	// Status filters by lifecycle state.
	Status *domain.ItemStatus

	// Category performs an exact match on category.
	Category *string

	// Search performs ILIKE '%...%' across description, category, brand,
	// color and location.
	Search *string

	// SortBy determines the sort column: "created_at" or "date".
	// Default: "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC".
	SortOrder string

	// Limit is the maximum number of items to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of items to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200

	sortByCreatedAt = "created_at"
	sortByDate      = "date"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	switch f.SortBy {
	case sortByCreatedAt, sortByDate:
		// valid
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
}
