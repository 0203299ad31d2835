package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns items and receives notifications.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
