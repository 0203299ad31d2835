package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/novahq/nova-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$04$notarealhashnotarealhashnotarealhash",
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedItem creates an open item owned by userID with the given role.
// Returns a filled domain.Item.
func SeedItem(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, role domain.ItemRole) domain.Item {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.Item{
		ID:          uuid.New(),
		UserID:      userID,
		Role:        role,
		Description: "seeded " + role.String() + " item " + uniqueSuffix(),
		Status:      domain.ItemStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO items (id, user_id, role, description, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.UserID, string(item.Role), item.Description, string(item.Status),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert item: %v", err)
	}

	return item
}
