package matcher

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
)

// searchResponse mirrors the provider's search payload.
type searchResponse struct {
	Matches []searchMatch `json:"matches"`
}

type searchMatch struct {
	ItemID string  `json:"item_id"`
	Score  float64 `json:"score"`
}

// mapCandidates converts provider hits into domain candidates. A hit whose
// item_id is not a valid UUID is dropped with a warning instead of failing
// the whole response; the resolver discards stale references anyway.
func (c *Client) mapCandidates(ctx context.Context, resp searchResponse) []domain.MatchCandidate {
	candidates := make([]domain.MatchCandidate, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		id, err := uuid.Parse(m.ItemID)
		if err != nil {
			c.log.WarnContext(ctx, "matcher candidate dropped",
				slog.String("item_id", m.ItemID),
				slog.String("error", err.Error()),
			)
			continue
		}
		candidates = append(candidates, domain.MatchCandidate{
			CandidateItemID: id,
			RawScore:        m.Score,
		})
	}
	return candidates
}
