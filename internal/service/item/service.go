// Package item provides business logic for lost and found item reports:
// creation with photo processing, listing, and lifecycle updates. Creating
// an item also kicks off a matching pass, but the pass runs best-effort:
// the report is committed first and survives any provider trouble.
package item

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	repo "github.com/novahq/nova-backend/internal/adapter/postgres/item"
	"github.com/novahq/nova-backend/internal/domain"
)

const (
	DefaultLimit      = 50
	MaxDescriptionLen = 2000
	MaxShortFieldLen  = 100
)

type itemRepo interface {
	Create(ctx context.Context, it *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, f repo.Filter) ([]*domain.Item, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) (*domain.Item, error)
}

type imageStore interface {
	Save(ctx context.Context, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

type orchestrator interface {
	OnItemCreated(ctx context.Context, itemID uuid.UUID)
}

// Service provides item management operations.
type Service struct {
	items        itemRepo
	images       imageStore
	matching     orchestrator
	maxDimension int
	log          *slog.Logger
}

// NewService creates a new item service. maxDimension bounds stored photo
// size on the longest side.
func NewService(
	log *slog.Logger,
	items itemRepo,
	images imageStore,
	matching orchestrator,
	maxDimension int,
) *Service {
	return &Service{
		items:        items,
		images:       images,
		matching:     matching,
		maxDimension: maxDimension,
		log:          log.With("service", "item"),
	}
}
