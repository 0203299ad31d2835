package matching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/novahq/nova-backend/internal/domain"
)

// resolveCandidates validates provider hits against storage and converts
// the survivors into canonically oriented pairs. A candidate is dropped
// when it references an item that no longer exists or whose role is not the
// opposite of the source item's: the provider index can lag behind storage
// and stale hits are expected, not an error.
func (s *Service) resolveCandidates(ctx context.Context, source *domain.Item, candidates []domain.MatchCandidate) ([]domain.ResolvedPair, error) {
	wantRole := source.Role.Opposite()

	pairs := make([]domain.ResolvedPair, 0, len(candidates))
	for _, c := range candidates {
		if c.CandidateItemID == source.ID {
			continue
		}

		other, err := s.items.GetByIDAndRole(ctx, c.CandidateItemID, wantRole)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.log.DebugContext(ctx, "stale candidate dropped",
					slog.String("candidate_id", c.CandidateItemID.String()),
				)
				continue
			}
			return nil, fmt.Errorf("resolve candidate %s: %w", c.CandidateItemID, err)
		}

		pairs = append(pairs, orientPair(source, other, normalizeScore(c.RawScore)))
	}

	return pairs, nil
}

// orientPair builds the canonical pair: the lost item is always the lost
// side regardless of which side triggered the search. This is what makes
// the (lost, found) ledger key stable across directions.
func orientPair(source, other *domain.Item, score int) domain.ResolvedPair {
	if source.Role == domain.ItemRoleLost {
		return domain.ResolvedPair{Lost: source, Found: other, Score: score}
	}
	return domain.ResolvedPair{Lost: other, Found: source, Score: score}
}

// normalizeScore converts a fractional provider score to an integer
// percentage, clamped to [0, 100].
func normalizeScore(raw float64) int {
	score := int(math.Round(raw * 100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
