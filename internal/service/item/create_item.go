package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
	"github.com/novahq/nova-backend/internal/imaging"
	"github.com/novahq/nova-backend/pkg/ctxutil"
)

// CreateItem reports a lost or found item. The report is persisted first;
// the matching pass runs after and can fail freely without the caller ever
// noticing.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var imageKey *string
	if input.Image != nil {
		key, err := s.storeImage(ctx, input)
		if err != nil {
			return nil, err
		}
		imageKey = &key
	}

	created, err := s.items.Create(ctx, &domain.Item{
		ID:          uuid.New(),
		UserID:      userID,
		Role:        input.Role,
		Description: strings.TrimSpace(input.Description),
		Category:    trimOrNil(input.Category),
		Brand:       trimOrNil(input.Brand),
		Color:       trimOrNil(input.Color),
		Location:    trimOrNil(input.Location),
		Date:        input.Date,
		ImageKey:    imageKey,
		Status:      domain.ItemStatusOpen,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		if imageKey != nil {
			if delErr := s.images.Delete(ctx, *imageKey); delErr != nil {
				s.log.WarnContext(ctx, "failed to delete orphaned image",
					slog.String("image_key", *imageKey),
					slog.String("error", delErr.Error()),
				)
			}
		}
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.log.InfoContext(ctx, "item created",
		slog.String("user_id", userID.String()),
		slog.String("item_id", created.ID.String()),
		slog.String("role", created.Role.String()),
		slog.Bool("has_image", imageKey != nil),
	)

	s.matching.OnItemCreated(ctx, created.ID)

	return created, nil
}

// storeImage normalizes the upload and persists it, returning the key.
func (s *Service) storeImage(ctx context.Context, input CreateItemInput) (string, error) {
	processed, err := imaging.Process(input.Image, s.maxDimension)
	if err != nil {
		return "", domain.NewValidationError("image", err.Error())
	}

	key, err := s.images.Save(ctx, processed.Data)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	return key, nil
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
