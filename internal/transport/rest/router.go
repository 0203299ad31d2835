package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	Item         *ItemHandler
	Match        *MatchHandler
	Notification *NotificationHandler
	Contact      *ContactHandler
	Image        *ImageHandler
}

// NewRouter creates the API router with all endpoints registered.
// Authentication is enforced per-operation by the services; the router
// itself only distinguishes paths and methods.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Probes.
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	// Public: register and login.
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)

	// Items.
	mux.HandleFunc("POST /api/items", h.Item.Create)
	mux.HandleFunc("GET /api/items", h.Item.List)
	mux.HandleFunc("GET /api/items/mine", h.Item.Mine)
	mux.HandleFunc("GET /api/items/{id}", h.Item.Get)
	mux.HandleFunc("PATCH /api/items/{id}/status", h.Item.UpdateStatus)
	mux.HandleFunc("POST /api/items/{id}/match", h.Match.Trigger)

	// Matches.
	mux.HandleFunc("GET /api/matches", h.Match.List)
	mux.HandleFunc("GET /api/matches/{id}", h.Match.Get)
	mux.HandleFunc("POST /api/matches/{id}/confirm", h.Match.Confirm)
	mux.HandleFunc("POST /api/matches/{id}/reject", h.Match.Reject)

	// Notifications.
	mux.HandleFunc("GET /api/notifications", h.Notification.List)
	mux.HandleFunc("POST /api/notifications/{id}/read", h.Notification.MarkRead)
	mux.HandleFunc("POST /api/notifications/read-all", h.Notification.MarkAllRead)

	// Contact requests.
	mux.HandleFunc("POST /api/contact-requests", h.Contact.Create)
	mux.HandleFunc("GET /api/contact-requests", h.Contact.List)
	mux.HandleFunc("POST /api/contact-requests/{id}/resolve", h.Contact.Resolve)

	// Stored photos.
	mux.HandleFunc("GET /api/images/{key}", h.Image.Get)

	return mux
}
