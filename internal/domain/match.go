package domain

import (
	"time"

	"github.com/google/uuid"
)

// MatchCandidate is a raw provider hit: a referenced item id plus a
// fractional similarity score in [0,1]. Candidates are transient and only
// live within one orchestration pass; they have not been validated against
// storage yet.
type MatchCandidate struct {
	CandidateItemID uuid.UUID
	RawScore        float64
}

// ResolvedPair is a candidate validated to reference a real, opposite-role
// item, canonically oriented (Lost always has role=lost) with the score
// normalized to a percentage. The canonical orientation is what makes
// ledger idempotency well-defined regardless of which side triggered the
// search.
type ResolvedPair struct {
	Lost  *Item
	Found *Item
	Score int
}

// Match links exactly one lost item with exactly one found item. At most
// one match exists per (lost, found) pair; creation is idempotent on the
// pair and first-write-wins on the score.
type Match struct {
	ID          uuid.UUID
	LostItemID  uuid.UUID
	FoundItemID uuid.UUID
	Score       int
	Status      MatchStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// LostItem and FoundItem are hydrated by the ledger for notification
	// fan-out; nil when the match was loaded without its items.
	LostItem  *Item
	FoundItem *Item
}

// CanTransitionTo reports whether the match may move to the given status.
// Only pending matches may be confirmed or rejected; confirmed and
// rejected are terminal.
func (m *Match) CanTransitionTo(to MatchStatus) bool {
	return m.Status == MatchStatusPending &&
		(to == MatchStatusConfirmed || to == MatchStatusRejected)
}
