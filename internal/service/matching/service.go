// Package matching implements the match orchestration engine: indexing
// items with the external provider, searching the opposite index for
// candidates, recording matches idempotently, and fanning out notifications
// for matches that were newly created.
package matching

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
)

const DefaultLimit = 50

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	GetByIDAndRole(ctx context.Context, id uuid.UUID, role domain.ItemRole) (*domain.Item, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) (*domain.Item, error)
	SetIndexMarkers(ctx context.Context, id uuid.UUID, indexed bool, indexID string) error
}

type matchRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	GetOrCreate(ctx context.Context, lostItemID, foundItemID uuid.UUID, score int) (*domain.Match, bool, error)
	ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Match, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MatchStatus) (*domain.Match, error)
}

type matchProvider interface {
	IndexItem(ctx context.Context, item *domain.Item) (string, error)
	Search(ctx context.Context, role domain.ItemRole, text string, imageKey *string) ([]domain.MatchCandidate, error)
}

type notifier interface {
	NotifyNewMatches(ctx context.Context, matches []*domain.Match) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs orchestration passes and manages the match lifecycle.
type Service struct {
	items    itemRepo
	matches  matchRepo
	provider matchProvider
	notify   notifier
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new matching service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	matches matchRepo,
	provider matchProvider,
	notify notifier,
	tx txManager,
) *Service {
	return &Service{
		items:    items,
		matches:  matches,
		provider: provider,
		notify:   notify,
		tx:       tx,
		log:      log.With("service", "matching"),
	}
}
