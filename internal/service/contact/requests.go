package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
	"github.com/novahq/nova-backend/pkg/ctxutil"
)

// CreateRequestInput holds the parameters for requesting contact.
type CreateRequestInput struct {
	ItemID  uuid.UUID
	Message *string
}

// Validate checks all fields and collects all errors.
func (i CreateRequestInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Message != nil && len(strings.TrimSpace(*i.Message)) > MaxMessageLen {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 1000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResolveRequestInput holds the parameters for approving or denying.
type ResolveRequestInput struct {
	RequestID uuid.UUID
	Status    domain.ContactRequestStatus
}

// Validate checks all fields and collects all errors.
func (i ResolveRequestInput) Validate() error {
	var errs []domain.FieldError
	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if !i.Status.IsResolved() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be approved or denied"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRequestsInput holds the pagination for listing requests.
type ListRequestsInput struct {
	Limit  int
	Offset int
}

// CreateRequest opens a contact request against someone else's item and
// notifies the owner. A notification failure is logged, not surfaced: the
// request itself is already recorded.
func (s *Service) CreateRequest(ctx context.Context, input CreateRequestInput) (*domain.ContactRequest, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	it, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("load item: %w", err)
	}
	if it.UserID == userID {
		return nil, domain.NewValidationError("item_id", "cannot request contact for your own item")
	}

	created, err := s.requests.Create(ctx, &domain.ContactRequest{
		ID:          uuid.New(),
		RequesterID: userID,
		ItemID:      it.ID,
		Message:     trimOrNil(input.Message),
		Status:      domain.ContactRequestStatusPending,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create contact request: %w", err)
	}
	created.Item = it

	if err := s.notify.NotifyContactRequestCreated(ctx, created); err != nil {
		s.log.WarnContext(ctx, "contact request notification failed",
			slog.String("request_id", created.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "contact request created",
		slog.String("request_id", created.ID.String()),
		slog.String("item_id", it.ID.String()),
	)

	return created, nil
}

// ResolveRequest lets the item owner approve or deny a pending request and
// notifies the requester of the outcome.
func (s *Service) ResolveRequest(ctx context.Context, input ResolveRequestInput) (*domain.ContactRequest, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.requests.GetByID(ctx, input.RequestID)
	if err != nil {
		return nil, fmt.Errorf("load contact request: %w", err)
	}

	it, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("load item: %w", err)
	}
	if it.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if req.Status.IsResolved() {
		return nil, domain.NewInvalidTransitionError("contact_request", req.Status.String(), input.Status.String())
	}

	updated, err := s.requests.UpdateStatus(ctx, req.ID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("resolve contact request: %w", err)
	}
	updated.Item = it

	if err := s.notify.NotifyContactRequestResolved(ctx, updated); err != nil {
		s.log.WarnContext(ctx, "contact resolution notification failed",
			slog.String("request_id", updated.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "contact request resolved",
		slog.String("request_id", updated.ID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// ListRequests returns requests the current user sent plus requests
// targeting the user's items, newest first.
func (s *Service) ListRequests(ctx context.Context, input ListRequestsInput) ([]*domain.ContactRequest, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if input.Limit < 0 || input.Offset < 0 {
		return nil, domain.NewValidationError("pagination", "must be non-negative")
	}
	if input.Limit == 0 {
		input.Limit = DefaultLimit
	}

	reqs, err := s.requests.ListForUser(ctx, userID, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list contact requests: %w", err)
	}

	return reqs, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
