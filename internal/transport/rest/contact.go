package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
	"github.com/novahq/nova-backend/internal/service/contact"
)

// contactService defines the minimal interface needed by ContactHandler.
type contactService interface {
	CreateRequest(ctx context.Context, input contact.CreateRequestInput) (*domain.ContactRequest, error)
	ResolveRequest(ctx context.Context, input contact.ResolveRequestInput) (*domain.ContactRequest, error)
	ListRequests(ctx context.Context, input contact.ListRequestsInput) ([]*domain.ContactRequest, error)
}

// ContactHandler serves contact request REST endpoints.
type ContactHandler struct {
	svc contactService
	log *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: logger.With("handler", "contact")}
}

type createContactRequest struct {
	ItemID  string  `json:"itemId"`
	Message *string `json:"message,omitempty"`
}

type resolveContactRequest struct {
	Status string `json:"status"`
}

type contactResponse struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requesterId"`
	ItemID      string    `json:"itemId"`
	Message     *string   `json:"message,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type contactListResponse struct {
	Requests []contactResponse `json:"requests"`
}

// Create handles POST /api/contact-requests.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "itemId must be a valid uuid")
		return
	}

	created, err := h.svc.CreateRequest(r.Context(), contact.CreateRequestInput{
		ItemID:  itemID,
		Message: req.Message,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toContactResponse(created))
}

// Resolve handles POST /api/contact-requests/{id}/resolve.
func (h *ContactHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req resolveContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.ResolveRequest(r.Context(), contact.ResolveRequestInput{
		RequestID: id,
		Status:    domain.ContactRequestStatus(req.Status),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toContactResponse(updated))
}

// List handles GET /api/contact-requests.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.svc.ListRequests(r.Context(), contact.ListRequestsInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := contactListResponse{Requests: make([]contactResponse, 0, len(requests))}
	for _, req := range requests {
		resp.Requests = append(resp.Requests, toContactResponse(req))
	}

	writeJSON(w, http.StatusOK, resp)
}

func toContactResponse(req *domain.ContactRequest) contactResponse {
	return contactResponse{
		ID:          req.ID.String(),
		RequesterID: req.RequesterID.String(),
		ItemID:      req.ItemID.String(),
		Message:     req.Message,
		Status:      req.Status.String(),
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
	}
}
