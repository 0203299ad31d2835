// Package contact provides business logic for contact requests between
// item owners and finders. Contact details are never exposed directly;
// owners approve or deny each request and both sides hear about it through
// notifications.
package contact

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
)

const (
	DefaultLimit  = 50
	MaxMessageLen = 1000
)

type contactRepo interface {
	Create(ctx context.Context, req *domain.ContactRequest) (*domain.ContactRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactRequest, error)
	ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.ContactRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ContactRequestStatus) (*domain.ContactRequest, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
}

type notifier interface {
	NotifyContactRequestCreated(ctx context.Context, req *domain.ContactRequest) error
	NotifyContactRequestResolved(ctx context.Context, req *domain.ContactRequest) error
}

// Service manages the contact request lifecycle.
type Service struct {
	requests contactRepo
	items    itemRepo
	notify   notifier
	log      *slog.Logger
}

// NewService creates a new contact service.
func NewService(log *slog.Logger, requests contactRepo, items itemRepo, notify notifier) *Service {
	return &Service{
		requests: requests,
		items:    items,
		notify:   notify,
		log:      log.With("service", "contact"),
	}
}
