package matching

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
	"github.com/novahq/nova-backend/pkg/ctxutil"
)

// OnItemCreated runs an orchestration pass for a freshly created item.
// Provider outages, resolution failures and notification errors are logged
// and absorbed: item creation already committed and must never look failed
// to the user because matching is down.
func (s *Service) OnItemCreated(ctx context.Context, itemID uuid.UUID) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		s.log.WarnContext(ctx, "orchestration pass degraded",
			slog.String("item_id", itemID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	matches, err := s.runPass(ctx, item)
	if err != nil {
		s.log.WarnContext(ctx, "orchestration pass degraded",
			slog.String("item_id", itemID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	s.log.InfoContext(ctx, "orchestration pass complete",
		slog.String("item_id", itemID.String()),
		slog.Int("new_matches", len(matches)),
	)
}

// TriggerMatching re-runs the orchestration pass for an item the current
// user owns and returns the matches created by this pass. Only the owner may
// re-trigger: a pass costs provider calls and the result exposes both sides
// of every match. Unlike OnItemCreated, failures surface to the caller: an
// explicit re-run wants to know it didn't work.
func (s *Service) TriggerMatching(ctx context.Context, itemID uuid.UUID) ([]*domain.Match, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("load item: %w", err)
	}
	if item.UserID != userID {
		return nil, domain.ErrForbidden
	}

	return s.runPass(ctx, item)
}

// runPass executes one orchestration pass: index the item under its own
// role if it is not indexed yet, search the provider under that same role
// (the provider answers a lost-side search with found candidates and vice
// versa), resolve candidates into canonical pairs, record them in the
// ledger and notify owners of newly created matches. A manual re-run of an
// already-indexed item goes straight to the search.
//
// Indexing failure does not stop the pass; the search can still run on
// whatever the provider already knows. A search failure ends the pass with
// zero candidates.
func (s *Service) runPass(ctx context.Context, item *domain.Item) ([]*domain.Match, error) {
	if !item.Indexed {
		s.indexItem(ctx, item)
	}

	if !item.HasSearchableContent() {
		s.log.DebugContext(ctx, "item has no searchable content, skipping search",
			slog.String("item_id", item.ID.String()),
		)
		return nil, nil
	}

	candidates, err := s.provider.Search(ctx, item.Role, item.Description, item.ImageKey)
	if err != nil {
		return nil, fmt.Errorf("search candidates: %w", err)
	}

	pairs, err := s.resolveCandidates(ctx, item, candidates)
	if err != nil {
		return nil, err
	}

	created, err := s.recordPairs(ctx, pairs)
	if err != nil {
		return nil, err
	}

	if len(created) > 0 {
		if err := s.notify.NotifyNewMatches(ctx, created); err != nil {
			// Matches are already recorded; a dispatch failure must not
			// fail the pass or cause a retry that would double-create.
			s.log.WarnContext(ctx, "match notification dispatch failed",
				slog.String("item_id", item.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return created, nil
}

// indexItem registers the item in the provider index for its role and
// records the index markers. Failure is logged and swallowed.
func (s *Service) indexItem(ctx context.Context, item *domain.Item) {
	indexID, err := s.provider.IndexItem(ctx, item)
	if err != nil {
		s.log.WarnContext(ctx, "provider indexing failed",
			slog.String("item_id", item.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := s.items.SetIndexMarkers(ctx, item.ID, true, indexID); err != nil {
		s.log.WarnContext(ctx, "recording index markers failed",
			slog.String("item_id", item.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	item.Indexed = true
	item.IndexID = &indexID
}
