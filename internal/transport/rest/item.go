package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
	"github.com/novahq/nova-backend/internal/service/item"
)

// multipartMemoryLimit caps how much of a parsed form stays in memory;
// larger parts spill to temp files.
const multipartMemoryLimit = 4 << 20

// itemService defines the minimal interface needed by ItemHandler.
type itemService interface {
	CreateItem(ctx context.Context, input item.CreateItemInput) (*domain.Item, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	ListItems(ctx context.Context, input item.ListItemsInput) ([]*domain.Item, int, error)
	MyItems(ctx context.Context, input item.MyItemsInput) ([]*domain.Item, int, error)
	UpdateStatus(ctx context.Context, input item.UpdateStatusInput) (*domain.Item, error)
}

// ItemHandler serves item REST endpoints.
type ItemHandler struct {
	svc           itemService
	maxUploadSize int64
	log           *slog.Logger
}

// NewItemHandler creates an ItemHandler. maxUploadMB caps the request body
// on item creation.
func NewItemHandler(svc itemService, maxUploadMB int, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		svc:           svc,
		maxUploadSize: int64(maxUploadMB) << 20,
		log:           logger.With("handler", "item"),
	}
}

type itemResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Role        string     `json:"role"`
	Description string     `json:"description"`
	Category    *string    `json:"category,omitempty"`
	Brand       *string    `json:"brand,omitempty"`
	Color       *string    `json:"color,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	ImageKey    *string    `json:"imageKey,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type itemListResponse struct {
	Items []itemResponse `json:"items"`
	Total int            `json:"total"`
}

type updateItemStatusRequest struct {
	Status string `json:"status"`
}

// Create handles POST /api/items. The body is multipart/form-data with an
// optional image part, matching the upload shape mobile clients send.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	input := item.CreateItemInput{
		Role:        domain.ItemRole(r.FormValue("role")),
		Description: r.FormValue("description"),
		Category:    formValue(r, "category"),
		Brand:       formValue(r, "brand"),
		Color:       formValue(r, "color"),
		Location:    formValue(r, "location"),
	}

	if raw := r.FormValue("date"); raw != "" {
		date, err := parseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be RFC 3339 or YYYY-MM-DD")
			return
		}
		input.Date = &date
	}

	if file, _, err := r.FormFile("image"); err == nil {
		defer file.Close()
		input.Image = file
	}

	created, err := h.svc.CreateItem(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(created))
}

// Get handles GET /api/items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	it, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// List handles GET /api/items with role/status/category/search filters.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	input := item.ListItemsInput{
		Category:  queryValue(r, "category"),
		Search:    queryValue(r, "search"),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
		Limit:     queryInt(r, "limit", 0),
		Offset:    queryInt(r, "offset", 0),
	}
	if v := queryValue(r, "role"); v != nil {
		role := domain.ItemRole(*v)
		input.Role = &role
	}
	if v := queryValue(r, "status"); v != nil {
		status := domain.ItemStatus(*v)
		input.Status = &status
	}

	items, total, err := h.svc.ListItems(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemListResponse(items, total))
}

// Mine handles GET /api/items/mine.
func (h *ItemHandler) Mine(w http.ResponseWriter, r *http.Request) {
	input := item.MyItemsInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}
	if v := queryValue(r, "role"); v != nil {
		role := domain.ItemRole(*v)
		input.Role = &role
	}
	if v := queryValue(r, "status"); v != nil {
		status := domain.ItemStatus(*v)
		input.Status = &status
	}

	items, total, err := h.svc.MyItems(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemListResponse(items, total))
}

// UpdateStatus handles PATCH /api/items/{id}/status.
func (h *ItemHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateItemStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateStatus(r.Context(), item.UpdateStatusInput{
		ItemID: id,
		Status: domain.ItemStatus(req.Status),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(updated))
}

func toItemResponse(it *domain.Item) itemResponse {
	return itemResponse{
		ID:          it.ID.String(),
		UserID:      it.UserID.String(),
		Role:        it.Role.String(),
		Description: it.Description,
		Category:    it.Category,
		Brand:       it.Brand,
		Color:       it.Color,
		Location:    it.Location,
		Date:        it.Date,
		ImageKey:    it.ImageKey,
		Status:      it.Status.String(),
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func toItemListResponse(items []*domain.Item, total int) itemListResponse {
	resp := itemListResponse{
		Items: make([]itemResponse, 0, len(items)),
		Total: total,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, toItemResponse(it))
	}
	return resp
}

// formValue returns a pointer to a non-empty form field, nil otherwise.
func formValue(r *http.Request, name string) *string {
	v := r.FormValue(name)
	if v == "" {
		return nil
	}
	return &v
}

// queryValue returns a pointer to a non-empty query parameter, nil otherwise.
func queryValue(r *http.Request, name string) *string {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
