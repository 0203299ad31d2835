package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
	"github.com/novahq/nova-backend/pkg/ctxutil"
)

// ListInput holds the parameters for listing notifications.
type ListInput struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
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

// List returns the current user's notifications newest first, plus total.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Notification, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}
	if input.Limit == 0 {
		input.Limit = DefaultLimit
	}

	items, total, err := s.notifications.List(ctx, userID, input.UnreadOnly, input.Limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}

	return items, total, nil
}

// MarkRead acknowledges one notification owned by the current user.
func (s *Service) MarkRead(ctx context.Context, notificationID uuid.UUID) (*domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if notificationID == uuid.Nil {
		return nil, domain.NewValidationError("notification_id", "required")
	}

	n, err := s.notifications.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}

	return n, nil
}

// MarkAllRead acknowledges every unread notification for the current user.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}

	s.log.InfoContext(ctx, "notifications marked read",
		slog.String("user_id", userID.String()),
		slog.Int("count", n),
	)

	return n, nil
}
