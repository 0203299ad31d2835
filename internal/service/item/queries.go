package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	repo "github.com/novahq/nova-backend/internal/adapter/postgres/item"
	"github.com/novahq/nova-backend/internal/domain"
	"github.com/novahq/nova-backend/pkg/ctxutil"
)

// GetItem returns one item by id. Any authenticated user may look at any
// report; that is the point of a lost and found board.
func (s *Service) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if itemID == uuid.Nil {
		return nil, domain.NewValidationError("item_id", "required")
	}

	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	return it, nil
}

// ListItems browses all reports with filters and pagination.
func (s *Service) ListItems(ctx context.Context, input ListItemsInput) ([]*domain.Item, int, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, 0, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	items, total, err := s.items.List(ctx, repo.Filter{
		Role:      input.Role,
		Status:    input.Status,
		Category:  trimOrNil(input.Category),
		Search:    trimOrNil(input.Search),
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}

	return items, total, nil
}

// MyItems lists the current user's own reports, optionally narrowed by
// role and status.
func (s *Service) MyItems(ctx context.Context, input MyItemsInput) ([]*domain.Item, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}
	if input.Role != nil && !input.Role.IsValid() {
		return nil, 0, domain.NewValidationError("role", "must be lost or found")
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, 0, domain.NewValidationError("status", "invalid status")
	}

	items, total, err := s.items.List(ctx, repo.Filter{
		UserID: &userID,
		Role:   input.Role,
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list my items: %w", err)
	}

	return items, total, nil
}
