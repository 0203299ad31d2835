package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/novahq/nova-backend/internal/domain"
	"github.com/novahq/nova-backend/pkg/ctxutil"
)

// UpdateStatus lets the owner close out a report. Owners may only move an
// item to resolved; the matched status is set exclusively by match
// confirmation.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Item, error) {
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
	if it.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if input.Status != domain.ItemStatusResolved || it.Status == domain.ItemStatusResolved {
		return nil, domain.NewInvalidTransitionError("item", it.Status.String(), input.Status.String())
	}

	updated, err := s.items.UpdateStatus(ctx, it.ID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("update item status: %w", err)
	}

	s.log.InfoContext(ctx, "item status updated",
		slog.String("item_id", it.ID.String()),
		slog.String("from", it.Status.String()),
		slog.String("to", input.Status.String()),
	)

	return updated, nil
}
