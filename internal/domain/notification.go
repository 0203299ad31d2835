package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a user-facing message created by the dispatcher or the
// contact-request flow. The only permitted mutation is flipping Read.
type Notification struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Kind    NotificationKind
	Title   string
	Message string

	// ItemID and MatchID optionally reference the entities the
	// notification is about.
	ItemID  *uuid.UUID
	MatchID *uuid.UUID

	Read      bool
	CreatedAt time.Time
}
