package matching

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
	"github.com/novahq/nova-backend/pkg/ctxutil"
)

// GetMatch returns one match the current user participates in.
func (s *Service) GetMatch(ctx context.Context, matchID uuid.UUID) (*domain.Match, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	m, err := s.loadWithItems(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(m, userID) {
		return nil, domain.ErrForbidden
	}

	return m, nil
}

// ListMatches returns matches where the current user owns either side.
func (s *Service) ListMatches(ctx context.Context, input ListMatchesInput) ([]*domain.Match, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Limit == 0 {
		input.Limit = DefaultLimit
	}

	matches, err := s.matches.ListForUser(ctx, userID, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matches, nil
}

// Confirm moves a pending match to confirmed and marks both items matched.
// The status writes happen in one transaction: a confirmed match with
// still-open items is not a state this system produces.
func (s *Service) Confirm(ctx context.Context, matchID uuid.UUID) (*domain.Match, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	m, err := s.loadWithItems(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(m, userID) {
		return nil, domain.ErrForbidden
	}
	if !m.CanTransitionTo(domain.MatchStatusConfirmed) {
		return nil, domain.NewInvalidTransitionError("match", m.Status.String(), domain.MatchStatusConfirmed.String())
	}

	var updated *domain.Match
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		updated, err = s.matches.UpdateStatus(ctx, m.ID, domain.MatchStatusConfirmed)
		if err != nil {
			return fmt.Errorf("confirm match: %w", err)
		}
		if _, err := s.items.UpdateStatus(ctx, m.LostItemID, domain.ItemStatusMatched); err != nil {
			return fmt.Errorf("mark lost item matched: %w", err)
		}
		if _, err := s.items.UpdateStatus(ctx, m.FoundItemID, domain.ItemStatusMatched); err != nil {
			return fmt.Errorf("mark found item matched: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "match confirmed",
		slog.String("match_id", m.ID.String()),
		slog.String("user_id", userID.String()),
	)

	return updated, nil
}

// Reject moves a pending match to rejected. Item statuses are untouched:
// the items stay open for other matches.
func (s *Service) Reject(ctx context.Context, matchID uuid.UUID) (*domain.Match, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	m, err := s.loadWithItems(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(m, userID) {
		return nil, domain.ErrForbidden
	}
	if !m.CanTransitionTo(domain.MatchStatusRejected) {
		return nil, domain.NewInvalidTransitionError("match", m.Status.String(), domain.MatchStatusRejected.String())
	}

	updated, err := s.matches.UpdateStatus(ctx, m.ID, domain.MatchStatusRejected)
	if err != nil {
		return nil, fmt.Errorf("reject match: %w", err)
	}

	s.log.InfoContext(ctx, "match rejected",
		slog.String("match_id", m.ID.String()),
		slog.String("user_id", userID.String()),
	)

	return updated, nil
}

// loadWithItems fetches a match and hydrates both sides.
func (s *Service) loadWithItems(ctx context.Context, matchID uuid.UUID) (*domain.Match, error) {
	m, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("load match: %w", err)
	}

	lost, err := s.items.GetByID(ctx, m.LostItemID)
	if err != nil {
		return nil, fmt.Errorf("load lost item: %w", err)
	}
	found, err := s.items.GetByID(ctx, m.FoundItemID)
	if err != nil {
		return nil, fmt.Errorf("load found item: %w", err)
	}

	m.LostItem = lost
	m.FoundItem = found
	return m, nil
}

func isParticipant(m *domain.Match, userID uuid.UUID) bool {
	return (m.LostItem != nil && m.LostItem.UserID == userID) ||
		(m.FoundItem != nil && m.FoundItem.UserID == userID)
}
