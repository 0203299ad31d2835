// Package matcher implements the HTTP client for the external AI matching
// provider. The provider keeps two similarity indexes, one per item role,
// and exposes multipart endpoints to add items and search by text or image.
package matcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/novahq/nova-backend/internal/config"
	"github.com/novahq/nova-backend/internal/domain"
)

const retryDelay = 500 * time.Millisecond

// AttachmentOpener provides read access to stored item images.
type AttachmentOpener interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// Client talks to the matching provider over HTTP.
type Client struct {
	baseURL     string
	topK        int
	httpClient  *http.Client
	attachments AttachmentOpener
	log         *slog.Logger
}

// NewClient creates a Client from configuration. The HTTP timeout caps every
// provider call; the caller never waits longer than cfg.Timeout.
func NewClient(cfg config.MatcherConfig, attachments AttachmentOpener, logger *slog.Logger) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		topK:        cfg.TopK,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		attachments: attachments,
		log:         logger.With("adapter", "matcher"),
	}
}

// IndexItem registers the item in the index for its own role and returns the
// provider-side identifier. The provider keys entries by the item id, so the
// returned identifier is the item id rendered as a string.
//
// An unreadable image attachment degrades the request to text-only rather
// than failing it.
func (c *Client) IndexItem(ctx context.Context, item *domain.Item) (string, error) {
	reqURL := c.baseURL + indexPath(item.Role)

	fields := map[string]string{
		"item_id":     item.ID.String(),
		"description": item.Description,
	}

	body, contentType, err := c.buildForm(ctx, fields, item.ImageKey)
	if err != nil {
		return "", domain.NewProviderError("index", err)
	}

	c.log.DebugContext(ctx, "matcher index request",
		slog.String("item_id", item.ID.String()),
		slog.String("role", item.Role.String()),
	)

	resp, err := c.post(ctx, reqURL, contentType, body)
	if err != nil {
		return "", domain.NewProviderError("index", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", domain.NewProviderError("index", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	return item.ID.String(), nil
}

// Search queries on behalf of an item with the given role. The provider
// resolves the cross-role lookup itself: a search under the lost role
// returns found candidates and vice versa. Both text and image are
// optional; when neither carries content the call is short-circuited
// without touching the network.
func (c *Client) Search(ctx context.Context, role domain.ItemRole, text string, imageKey *string) ([]domain.MatchCandidate, error) {
	if strings.TrimSpace(text) == "" && imageKey == nil {
		return nil, nil
	}

	reqURL := c.baseURL + searchPath(role) + "?top_k=" + strconv.Itoa(c.topK)

	body, contentType, err := c.buildForm(ctx, map[string]string{"text": text}, imageKey)
	if err != nil {
		return nil, domain.NewProviderError("search", err)
	}

	c.log.DebugContext(ctx, "matcher search request", slog.String("role", role.String()))

	resp, err := c.post(ctx, reqURL, contentType, body)
	if err != nil {
		return nil, domain.NewProviderError("search", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.NewProviderError("search", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewProviderError("search", fmt.Errorf("read body: %w", err))
	}

	var parsed searchResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, domain.NewProviderError("search", fmt.Errorf("decode json: %w", err))
	}

	candidates := c.mapCandidates(ctx, parsed)

	c.log.DebugContext(ctx, "matcher search response",
		slog.String("role", role.String()),
		slog.Int("candidates", len(candidates)),
	)

	return candidates, nil
}

// post sends the multipart body with a single retry on 5xx or network
// errors. The body bytes are kept so the retry can replay them; both
// endpoints are safe to repeat (indexing is keyed by item id, search is
// read-only).
func (c *Client) post(ctx context.Context, reqURL, contentType string, body *bytes.Buffer) (*http.Response, error) {
	payload := body.Bytes()

	attempt := func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", contentType)
		return c.httpClient.Do(req)
	}

	resp, err := attempt()

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if shouldRetry && ctx.Err() == nil {
		reason := "network error"
		if err == nil && resp != nil {
			reason = fmt.Sprintf("status %d", resp.StatusCode)
		}
		c.log.WarnContext(ctx, "matcher retry",
			slog.String("url", reqURL),
			slog.String("reason", reason),
		)

		// Close body from the failed attempt before retrying.
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}

		time.Sleep(retryDelay)

		resp, err = attempt()
	}

	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// buildForm assembles a multipart body from text fields plus an optional
// image attachment. The attachment is held open only for the duration of
// the copy. An attachment that cannot be opened is logged and skipped.
func (c *Client) buildForm(ctx context.Context, fields map[string]string, imageKey *string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if imageKey != nil {
		if err := c.attachImage(ctx, w, *imageKey); err != nil {
			c.log.WarnContext(ctx, "matcher attachment skipped",
				slog.String("image_key", *imageKey),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

func (c *Client) attachImage(ctx context.Context, w *multipart.Writer, key string) error {
	rc, err := c.attachments.Open(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrAttachmentUnavailable, err)
	}
	defer rc.Close()

	part, err := w.CreateFormFile("image", key)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, rc); err != nil {
		return fmt.Errorf("copy attachment: %w", err)
	}
	return nil
}

func indexPath(role domain.ItemRole) string {
	if role == domain.ItemRoleFound {
		return "/add/found_item"
	}
	return "/add/lost_item"
}

func searchPath(role domain.ItemRole) string {
	if role == domain.ItemRoleFound {
		return "/search/found"
	}
	return "/search/lost"
}
