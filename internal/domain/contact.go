package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactRequest links a requester to an item whose owner they want to
// reach. Resolution (approve/deny) is an owner-only action.
type ContactRequest struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	ItemID      uuid.UUID
	Message     *string
	Status      ContactRequestStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Item is hydrated for notification targeting; nil when loaded bare.
	Item *Item
}
