// Package notification provides business logic for user notifications:
// dispatching them when matches and contact requests happen, and letting
// users list and acknowledge them.
package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
)

const DefaultLimit = 50

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*domain.Notification, int, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}

// Service manages notification dispatch and read state.
type Service struct {
	notifications notificationRepo
	log           *slog.Logger
}

// NewService creates a new notification service.
func NewService(log *slog.Logger, notifications notificationRepo) *Service {
	return &Service{
		notifications: notifications,
		log:           log.With("service", "notification"),
	}
}
