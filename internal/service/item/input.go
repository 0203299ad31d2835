package item

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
)

// CreateItemInput holds the parameters for reporting an item.
type CreateItemInput struct {
	Role        domain.ItemRole
	Description string
	Category    *string
	Brand       *string
	Color       *string
	Location    *string
	Date        *time.Time

	// Image is the raw uploaded photo, already size-capped by the
	// transport layer. Nil when the report has no photo.
	Image io.Reader
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be lost or found"})
	}

	desc := strings.TrimSpace(i.Description)
	if desc == "" && i.Image == nil {
		errs = append(errs, domain.FieldError{Field: "description", Message: "description or image required"})
	}
	if len(desc) > MaxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	for _, f := range []struct {
		name  string
		value *string
	}{
		{"category", i.Category},
		{"brand", i.Brand},
		{"color", i.Color},
		{"location", i.Location},
	} {
		if f.value != nil && len(strings.TrimSpace(*f.value)) > MaxShortFieldLen {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "max 100 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListItemsInput holds the parameters for browsing items.
type ListItemsInput struct {
	Role      *domain.ItemRole
	Status    *domain.ItemStatus
	Category  *string
	Search    *string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListItemsInput) Validate() error {
	var errs []domain.FieldError

	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be lost or found"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MyItemsInput narrows the current user's items by role and status.
type MyItemsInput struct {
	Role   *domain.ItemRole
	Status *domain.ItemStatus
	Limit  int
	Offset int
}

// UpdateStatusInput holds the parameters for an item status change.
type UpdateStatusInput struct {
	ItemID uuid.UUID
	Status domain.ItemStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
