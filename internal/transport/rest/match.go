package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
	"github.com/novahq/nova-backend/internal/service/matching"
)

// matchingService defines the minimal interface needed by MatchHandler.
type matchingService interface {
	GetMatch(ctx context.Context, matchID uuid.UUID) (*domain.Match, error)
	ListMatches(ctx context.Context, input matching.ListMatchesInput) ([]*domain.Match, error)
	Confirm(ctx context.Context, matchID uuid.UUID) (*domain.Match, error)
	Reject(ctx context.Context, matchID uuid.UUID) (*domain.Match, error)
	TriggerMatching(ctx context.Context, itemID uuid.UUID) ([]*domain.Match, error)
}

// MatchHandler serves match review REST endpoints.
type MatchHandler struct {
	svc matchingService
	log *slog.Logger
}

// NewMatchHandler creates a MatchHandler.
func NewMatchHandler(svc matchingService, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{svc: svc, log: logger.With("handler", "match")}
}

type matchResponse struct {
	ID          string        `json:"id"`
	LostItemID  string        `json:"lostItemId"`
	FoundItemID string        `json:"foundItemId"`
	Score       int           `json:"score"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	LostItem    *itemResponse `json:"lostItem,omitempty"`
	FoundItem   *itemResponse `json:"foundItem,omitempty"`
}

type matchListResponse struct {
	Matches []matchResponse `json:"matches"`
}

// List handles GET /api/matches.
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	matches, err := h.svc.ListMatches(r.Context(), matching.ListMatchesInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchListResponse(matches))
}

// Get handles GET /api/matches/{id}.
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	m, err := h.svc.GetMatch(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchResponse(m))
}

// Confirm handles POST /api/matches/{id}/confirm.
func (h *MatchHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	m, err := h.svc.Confirm(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchResponse(m))
}

// Reject handles POST /api/matches/{id}/reject.
func (h *MatchHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	m, err := h.svc.Reject(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchResponse(m))
}

// Trigger handles POST /api/items/{id}/match: an explicit re-run of the
// matching pass for one item. Returns only matches created by this pass.
func (h *MatchHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	matches, err := h.svc.TriggerMatching(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchListResponse(matches))
}

func toMatchResponse(m *domain.Match) matchResponse {
	resp := matchResponse{
		ID:          m.ID.String(),
		LostItemID:  m.LostItemID.String(),
		FoundItemID: m.FoundItemID.String(),
		Score:       m.Score,
		Status:      m.Status.String(),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.LostItem != nil {
		lost := toItemResponse(m.LostItem)
		resp.LostItem = &lost
	}
	if m.FoundItem != nil {
		found := toItemResponse(m.FoundItem)
		resp.FoundItem = &found
	}
	return resp
}

func toMatchListResponse(matches []*domain.Match) matchListResponse {
	resp := matchListResponse{Matches: make([]matchResponse, 0, len(matches))}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, toMatchResponse(m))
	}
	return resp
}
