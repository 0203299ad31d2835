package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
	"github.com/novahq/nova-backend/internal/service/notification"
)

// notificationService defines the minimal interface needed by NotificationHandler.
type notificationService interface {
	List(ctx context.Context, input notification.ListInput) ([]*domain.Notification, int, error)
	MarkRead(ctx context.Context, notificationID uuid.UUID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
}

// NotificationHandler serves notification REST endpoints.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

type notificationResponse struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	ItemID    *uuid.UUID `json:"itemId,omitempty"`
	MatchID   *uuid.UUID `json:"matchId,omitempty"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"createdAt"`
}

type notificationListResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}

// List handles GET /api/notifications. ?unread=true narrows to unread.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, total, err := h.svc.List(r.Context(), notification.ListInput{
		UnreadOnly: r.URL.Query().Get("unread") == "true",
		Limit:      queryInt(r, "limit", 0),
		Offset:     queryInt(r, "offset", 0),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := notificationListResponse{
		Notifications: make([]notificationResponse, 0, len(notifications)),
		Total:         total,
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, toNotificationResponse(n))
	}

	writeJSON(w, http.StatusOK, resp)
}

// MarkRead handles POST /api/notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	n, err := h.svc.MarkRead(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNotificationResponse(n))
}

// MarkAllRead handles POST /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.MarkAllRead(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"updated": count})
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID.String(),
		Kind:      n.Kind.String(),
		Title:     n.Title,
		Message:   n.Message,
		ItemID:    n.ItemID,
		MatchID:   n.MatchID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
