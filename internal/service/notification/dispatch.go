package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
)

// NotifyNewMatches creates one notification per side for every newly
// created match. Callers pass only matches created in the current
// orchestration pass, so each owner hears about a given pair exactly once.
func (s *Service) NotifyNewMatches(ctx context.Context, matches []*domain.Match) error {
	for _, m := range matches {
		if m.LostItem == nil || m.FoundItem == nil {
			return fmt.Errorf("match %s: items not hydrated", m.ID)
		}

		matchID := m.ID
		lostItemID := m.LostItem.ID
		foundItemID := m.FoundItem.ID

		lost := &domain.Notification{
			ID:        uuid.New(),
			UserID:    m.LostItem.UserID,
			Kind:      domain.NotificationKindMatchFound,
			Title:     "Potential Match Found!",
			Message:   fmt.Sprintf("We found a potential match for your lost %s", m.LostItem.DisplayCategory()),
			ItemID:    &lostItemID,
			MatchID:   &matchID,
			CreatedAt: time.Now().UTC(),
		}
		if _, err := s.notifications.Create(ctx, lost); err != nil {
			return fmt.Errorf("notify lost item owner: %w", err)
		}

		found := &domain.Notification{
			ID:        uuid.New(),
			UserID:    m.FoundItem.UserID,
			Kind:      domain.NotificationKindMatchFound,
			Title:     "Potential Match Found!",
			Message:   fmt.Sprintf("Your found %s may match a lost item", m.FoundItem.DisplayCategory()),
			ItemID:    &foundItemID,
			MatchID:   &matchID,
			CreatedAt: time.Now().UTC(),
		}
		if _, err := s.notifications.Create(ctx, found); err != nil {
			return fmt.Errorf("notify found item owner: %w", err)
		}

		s.log.InfoContext(ctx, "match notifications dispatched",
			slog.String("match_id", m.ID.String()),
		)
	}

	return nil
}

// NotifyContactRequestCreated tells the item owner someone wants to get in
// touch. The request must carry its hydrated item.
func (s *Service) NotifyContactRequestCreated(ctx context.Context, req *domain.ContactRequest) error {
	if req.Item == nil {
		return fmt.Errorf("contact request %s: item not hydrated", req.ID)
	}

	itemID := req.Item.ID
	n := &domain.Notification{
		ID:        uuid.New(),
		UserID:    req.Item.UserID,
		Kind:      domain.NotificationKindContactRequest,
		Title:     "New Contact Request",
		Message:   fmt.Sprintf("Someone is requesting contact for your %s.", req.Item.DisplayCategory()),
		ItemID:    &itemID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.notifications.Create(ctx, n); err != nil {
		return fmt.Errorf("notify item owner: %w", err)
	}

	return nil
}

// NotifyContactRequestResolved tells the requester their request was
// approved or denied.
func (s *Service) NotifyContactRequestResolved(ctx context.Context, req *domain.ContactRequest) error {
	if req.Item == nil {
		return fmt.Errorf("contact request %s: item not hydrated", req.ID)
	}
	if !req.Status.IsResolved() {
		return fmt.Errorf("contact request %s: status %s is not resolved", req.ID, req.Status)
	}

	itemID := req.Item.ID
	n := &domain.Notification{
		ID:        uuid.New(),
		UserID:    req.RequesterID,
		Kind:      domain.NotificationKindContactRequestResolved,
		Title:     fmt.Sprintf("Contact Request %s", titleCase(req.Status.String())),
		Message:   fmt.Sprintf("Your contact request for %s has been %s.", req.Item.DisplayCategory(), req.Status),
		ItemID:    &itemID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.notifications.Create(ctx, n); err != nil {
		return fmt.Errorf("notify requester: %w", err)
	}

	return nil
}

// titleCase uppercases the first letter; statuses are plain ASCII words.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
