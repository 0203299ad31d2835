package matching

import (
	"github.com/novahq/nova-backend/internal/domain"
)

// ListMatchesInput holds the parameters for listing a user's matches.
type ListMatchesInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListMatchesInput) Validate() error {
	var errs []domain.FieldError
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
