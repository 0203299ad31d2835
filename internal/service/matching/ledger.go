package matching

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/novahq/nova-backend/internal/domain"
)

// recordPairs writes resolved pairs into the match ledger and returns only
// the matches this pass created. Existing matches keep their original score
// and status untouched, and are excluded from the result so their owners
// are never notified twice.
func (s *Service) recordPairs(ctx context.Context, pairs []domain.ResolvedPair) ([]*domain.Match, error) {
	var created []*domain.Match
	for _, p := range pairs {
		m, isNew, err := s.matches.GetOrCreate(ctx, p.Lost.ID, p.Found.ID, p.Score)
		if err != nil {
			return nil, fmt.Errorf("record match %s/%s: %w", p.Lost.ID, p.Found.ID, err)
		}
		if !isNew {
			s.log.DebugContext(ctx, "match already recorded",
				slog.String("match_id", m.ID.String()),
			)
			continue
		}

		// Hydrate for notification fan-out; both items are already loaded.
		m.LostItem = p.Lost
		m.FoundItem = p.Found
		created = append(created, m)
	}

	return created, nil
}
