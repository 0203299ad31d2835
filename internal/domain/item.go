package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item is a lost or found posting. Items are owned by the creating user and
// never deleted by the matching engine; only status and index markers change.
type Item struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Role        ItemRole
	Description string
	Category    *string
	Brand       *string
	Color       *string
	Location    *string
	Date        *time.Time

	// ImageKey references the stored attachment, if any.
	ImageKey *string

	Status ItemStatus

	// Indexed and IndexID record whether the item was written to the
	// external provider index and under which id.
	Indexed bool
	IndexID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasImage reports whether the item declares a stored attachment.
func (i *Item) HasImage() bool {
	return i.ImageKey != nil && *i.ImageKey != ""
}

// HasSearchableContent reports whether the item carries anything the
// provider can search with: non-blank text or an attachment.
func (i *Item) HasSearchableContent() bool {
	return strings.TrimSpace(i.Description) != "" || i.HasImage()
}

// DisplayCategory returns the category for user-facing messages,
// falling back to "item" when none was provided.
func (i *Item) DisplayCategory() string {
	if i.Category != nil && strings.TrimSpace(*i.Category) != "" {
		return strings.TrimSpace(*i.Category)
	}
	return "item"
}
