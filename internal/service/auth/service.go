// Package auth implements registration and password login.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
)

// PasswordHashCost is the bcrypt work factor for new password hashes.
const PasswordHashCost = 12

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
	}
}

// ValidateToken checks an access token and returns the user id it carries.
// Returns ErrUnauthorized for any invalid token.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
