package matching

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
	"github.com/novahq/nova-backend/pkg/ctxutil"
)

type testMocks struct {
	items    *itemRepoMock
	matches  *matchRepoMock
	provider *matchProviderMock
	notify   *notifierMock
}

func newTestService(t *testing.T, m testMocks) *Service {
	t.Helper()
	if m.items == nil {
		m.items = &itemRepoMock{}
	}
	if m.matches == nil {
		m.matches = &matchRepoMock{}
	}
	if m.provider == nil {
		m.provider = &matchProviderMock{}
	}
	if m.notify == nil {
		m.notify = &notifierMock{}
	}
	return &Service{
		items:    m.items,
		matches:  m.matches,
		provider: m.provider,
		notify:   m.notify,
		tx:       &txManagerMock{},
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func lostItem(userID uuid.UUID) *domain.Item {
	return &domain.Item{
		ID:          uuid.New(),
		UserID:      userID,
		Role:        domain.ItemRoleLost,
		Description: "black leather wallet",
		Status:      domain.ItemStatusOpen,
	}
}

func foundItem(userID uuid.UUID) *domain.Item {
	return &domain.Item{
		ID:          uuid.New(),
		UserID:      userID,
		Role:        domain.ItemRoleFound,
		Description: "wallet found near the park",
		Status:      domain.ItemStatusOpen,
	}
}

// ---------------------------------------------------------------------------
// TriggerMatching / runPass
// ---------------------------------------------------------------------------

func TestTriggerMatching_CreatesMatchFromLostSide(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	source := lostItem(owner)
	candidate := foundItem(uuid.New())

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return source, nil
		},
		GetByIDAndRoleFunc: func(ctx context.Context, id uuid.UUID, role domain.ItemRole) (*domain.Item, error) {
			if id != candidate.ID || role != domain.ItemRoleFound {
				t.Errorf("GetByIDAndRole(%s, %s), want (%s, found)", id, role, candidate.ID)
			}
			return candidate, nil
		},
		SetIndexMarkersFunc: func(ctx context.Context, id uuid.UUID, indexed bool, indexID string) error {
			return nil
		},
	}
	matches := &matchRepoMock{
		GetOrCreateFunc: func(ctx context.Context, lostID, foundID uuid.UUID, score int) (*domain.Match, bool, error) {
			return &domain.Match{
				ID:          uuid.New(),
				LostItemID:  lostID,
				FoundItemID: foundID,
				Score:       score,
				Status:      domain.MatchStatusPending,
			}, true, nil
		},
	}
	provider := &matchProviderMock{
		IndexItemFunc: func(ctx context.Context, item *domain.Item) (string, error) {
			return item.ID.String(), nil
		},
		SearchFunc: func(ctx context.Context, role domain.ItemRole, text string, imageKey *string) ([]domain.MatchCandidate, error) {
			// The search runs under the item's own role; the provider
			// answers with opposite-role candidates.
			if role != domain.ItemRoleLost {
				t.Errorf("search role = %s, want lost", role)
			}
			return []domain.MatchCandidate{{CandidateItemID: candidate.ID, RawScore: 0.87}}, nil
		},
	}
	notify := &notifierMock{
		NotifyNewMatchesFunc: func(ctx context.Context, ms []*domain.Match) error {
			return nil
		},
	}

	svc := newTestService(t, testMocks{items: items, matches: matches, provider: provider, notify: notify})
	ctx := ctxutil.WithUserID(context.Background(), owner)

	created, err := svc.TriggerMatching(ctx, source.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("created matches: got %d, want 1", len(created))
	}

	m := created[0]
	if m.LostItemID != source.ID {
		t.Errorf("LostItemID = %s, want %s (source is the lost side)", m.LostItemID, source.ID)
	}
	if m.FoundItemID != candidate.ID {
		t.Errorf("FoundItemID = %s, want %s", m.FoundItemID, candidate.ID)
	}
	if m.Score != 87 {
		t.Errorf("Score = %d, want 87", m.Score)
	}
	if m.LostItem == nil || m.FoundItem == nil {
		t.Error("created match should be hydrated with both items")
	}

	if len(notify.NotifyNewMatchesCalls()) != 1 {
		t.Errorf("NotifyNewMatches calls: got %d, want 1", len(notify.NotifyNewMatchesCalls()))
	}
	if len(items.SetIndexMarkersCalls()) != 1 {
		t.Errorf("SetIndexMarkers calls: got %d, want 1", len(items.SetIndexMarkersCalls()))
	}
}

func TestTriggerMatching_CanonicalOrientationFromFoundSide(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	source := foundItem(owner)
	candidate := lostItem(uuid.New())

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return source, nil
		},
		GetByIDAndRoleFunc: func(ctx context.Context, id uuid.UUID, role domain.ItemRole) (*domain.Item, error) {
			if role != domain.ItemRoleLost {
				t.Errorf("resolver role = %s, want lost", role)
			}
			return candidate, nil
		},
		SetIndexMarkersFunc: func(ctx context.Context, id uuid.UUID, indexed bool, indexID string) error {
			return nil
		},
	}
	matches := &matchRepoMock{
		GetOrCreateFunc: func(ctx context.Context, lostID, foundID uuid.UUID, score int) (*domain.Match, bool, error) {
			if lostID != candidate.ID {
				t.Errorf("lost side = %s, want candidate %s", lostID, candidate.ID)
			}
			if foundID != source.ID {
				t.Errorf("found side = %s, want source %s", foundID, source.ID)
			}
			return &domain.Match{ID: uuid.New(), LostItemID: lostID, FoundItemID: foundID, Score: score, Status: domain.MatchStatusPending}, true, nil
		},
	}
	provider := &matchProviderMock{
		IndexItemFunc: func(ctx context.Context, item *domain.Item) (string, error) {
			return item.ID.String(), nil
		},
		SearchFunc: func(ctx context.Context, role domain.ItemRole, text string, imageKey *string) ([]domain.MatchCandidate, error) {
			if role != domain.ItemRoleFound {
				t.Errorf("search role = %s, want found", role)
			}
			return []domain.MatchCandidate{{CandidateItemID: candidate.ID, RawScore: 0.5}}, nil
		},
	}
	notify := &notifierMock{
		NotifyNewMatchesFunc: func(ctx context.Context, ms []*domain.Match) error { return nil },
	}

	svc := newTestService(t, testMocks{items: items, matches: matches, provider: provider, notify: notify})
	ctx := ctxutil.WithUserID(context.Background(), owner)

	created, err := svc.TriggerMatching(ctx, source.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("created matches: got %d, want 1", len(created))
	}
}

func TestTriggerMatching_ScoreClamping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  float64
		want int
	}{
		{"fractional", 0.87, 87},
		{"rounds half up", 0.875, 88},
		{"above one clamps", 1.4, 100},
		{"negative clamps", -0.2, 0},
		{"zero", 0, 0},
		{"exactly one", 1.0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeScore(tt.raw); got != tt.want {
				t.Errorf("normalizeScore(%v) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTriggerMatching_ExistingMatchNotRenotified(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	source := lostItem(owner)
	candidate := foundItem(uuid.New())

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return source, nil
		},
		GetByIDAndRoleFunc: func(ctx context.Context, id uuid.UUID, role domain.ItemRole) (*domain.Item, error) {
			return candidate, nil
		},
		SetIndexMarkersFunc: func(ctx context.Context, id uuid.UUID, indexed bool, indexID string) error {
			return nil
		},
	}
	matches := &matchRepoMock{
		GetOrCreateFunc: func(ctx context.Context, lostID, foundID uuid.UUID, score int) (*domain.Match, bool, error) {
			// First pass already recorded this pair with score 91.
			return &domain.Match{
				ID:          uuid.New(),
				LostItemID:  lostID,
				FoundItemID: foundID,
				Score:       91,
				Status:      domain.MatchStatusPending,
			}, false, nil
		},
	}
	provider := &matchProviderMock{
		IndexItemFunc: func(ctx context.Context, item *domain.Item) (string, error) {
			return item.ID.String(), nil
		},
		SearchFunc: func(ctx context.Context, role domain.ItemRole, text string, imageKey *string) ([]domain.MatchCandidate, error) {
			return []domain.MatchCandidate{{CandidateItemID: candidate.ID, RawScore: 0.55}}, nil
		},
	}
	notify := &notifierMock{
		NotifyNewMatchesFunc: func(ctx context.Context, ms []*domain.Match) error { return nil },
	}

	svc := newTestService(t, testMocks{items: items, matches: matches, provider: provider, notify: notify})
	ctx := ctxutil.WithUserID(context.Background(), owner)

	created, err := svc.TriggerMatching(ctx, source.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 0 {
		t.Errorf("created matches: got %d, want 0 (pair already existed)", len(created))
	}
	if len(notify.NotifyNewMatchesCalls()) != 0 {
		t.Errorf("NotifyNewMatches calls: got %d, want 0", len(notify.NotifyNewMatchesCalls()))
	}
}

func TestTriggerMatching_StaleCandidatesDropped(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	source := lostItem(owner)
	valid := foundItem(uuid.New())
	staleID := uuid.New()

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return source, nil
		},
		GetByIDAndRoleFunc: func(ctx context.Context, id uuid.UUID, role domain.ItemRole) (*domain.Item, error) {
			if id == staleID {
				return nil, domain.ErrNotFound
			}
			return valid, nil
		},
		SetIndexMarkersFunc: func(ctx context.Context, id uuid.UUID, indexed bool, indexID string) error {
			return nil
		},
	}
	matches := &matchRepoMock{
		GetOrCreateFunc: func(ctx context.Context, lostID, foundID uuid.UUID, score int) (*domain.Match, bool, error) {
			return &domain.Match{ID: uuid.New(), LostItemID: lostID, FoundItemID: foundID, Score: score, Status: domain.MatchStatusPending}, true, nil
		},
	}
	provider := &matchProviderMock{
		IndexItemFunc: func(ctx context.Context, item *domain.Item) (string, error) {
			return item.ID.String(), nil
		},
		SearchFunc: func(ctx context.Context, role domain.ItemRole, text string, imageKey *string) ([]domain.MatchCandidate, error) {
			return []domain.MatchCandidate{
				{CandidateItemID: staleID, RawScore: 0.9},
				{CandidateItemID: source.ID, RawScore: 0.8}, // self-hit
				{CandidateItemID: valid.ID, RawScore: 0.7},
			}, nil
		},
	}
	notify := &notifierMock{
		NotifyNewMatchesFunc: func(ctx context.Context, ms []*domain.Match) error { return nil },
	}

	svc := newTestService(t, testMocks{items: items, matches: matches, provider: provider, notify: notify})
	ctx := ctxutil.WithUserID(context.Background(), owner)

	created, err := svc.TriggerMatching(ctx, source.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("created matches: got %d, want 1 (stale and self dropped)", len(created))
	}
	if len(matches.GetOrCreateCalls()) != 1 {
		t.Errorf("GetOrCreate calls: got %d, want 1", len(matches.GetOrCreateCalls()))
	}
}

func TestTriggerMatching_IndexFailureStillSearches(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	source := lostItem(owner)

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return source, nil
		},
	}
	provider := &matchProviderMock{
		IndexItemFunc: func(ctx context.Context, item *domain.Item) (string, error) {
			return "", domain.NewProviderError("index", errors.New("connection refused"))
		},
		SearchFunc: func(ctx context.Context, role domain.ItemRole, text string, imageKey *string) ([]domain.MatchCandidate, error) {
			return nil, nil
		},
	}

	svc := newTestService(t, testMocks{items: items, provider: provider})
	ctx := ctxutil.WithUserID(context.Background(), owner)

	created, err := svc.TriggerMatching(ctx, source.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 0 {
		t.Errorf("created matches: got %d, want 0", len(created))
	}
	if len(provider.SearchCalls()) != 1 {
		t.Errorf("Search calls: got %d, want 1 (index failure must not stop the search)", len(provider.SearchCalls()))
	}
	if len(items.SetIndexMarkersCalls()) != 0 {
		t.Errorf("SetIndexMarkers calls: got %d, want 0", len(items.SetIndexMarkersCalls()))
	}
}

func TestTriggerMatching_SearchFailureSurfaces(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	source := lostItem(owner)

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return source, nil
		},
		SetIndexMarkersFunc: func(ctx context.Context, id uuid.UUID, indexed bool, indexID string) error {
			return nil
		},
	}
	provider := &matchProviderMock{
		IndexItemFunc: func(ctx context.Context, item *domain.Item) (string, error) {
			return item.ID.String(), nil
		},
		SearchFunc: func(ctx context.Context, role domain.ItemRole, text string, imageKey *string) ([]domain.MatchCandidate, error) {
			return nil, domain.NewProviderError("search", errors.New("timeout"))
		},
	}

	svc := newTestService(t, testMocks{items: items, provider: provider})
	ctx := ctxutil.WithUserID(context.Background(), owner)

	_, err := svc.TriggerMatching(ctx, source.ID)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, domain.ErrProvider) {
		t.Errorf("error = %v, want ErrProvider", err)
	}
}

func TestTriggerMatching_AlreadyIndexedSkipsIndex(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	source := lostItem(owner)
	source.Indexed = true
	indexID := source.ID.String()
	source.IndexID = &indexID

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return source, nil
		},
	}
	provider := &matchProviderMock{
		SearchFunc: func(ctx context.Context, role domain.ItemRole, text string, imageKey *string) ([]domain.MatchCandidate, error) {
			return nil, nil
		},
	}

	svc := newTestService(t, testMocks{items: items, provider: provider})
	ctx := ctxutil.WithUserID(context.Background(), owner)

	if _, err := svc.TriggerMatching(ctx, source.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(provider.IndexItemCalls()) != 0 {
		t.Errorf("IndexItem calls: got %d, want 0 (item already indexed)", len(provider.IndexItemCalls()))
	}
	if len(provider.SearchCalls()) != 1 {
		t.Errorf("Search calls: got %d, want 1", len(provider.SearchCalls()))
	}
}

func TestTriggerMatching_Unauthorized(t *testing.T) {
	t.Parallel()

	provider := &matchProviderMock{}
	svc := newTestService(t, testMocks{provider: provider})

	_, err := svc.TriggerMatching(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
	if len(provider.IndexItemCalls()) != 0 || len(provider.SearchCalls()) != 0 {
		t.Error("provider must not be called without a user")
	}
}

func TestTriggerMatching_NonOwnerForbidden(t *testing.T) {
	t.Parallel()

	source := lostItem(uuid.New())

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return source, nil
		},
	}
	provider := &matchProviderMock{}

	svc := newTestService(t, testMocks{items: items, provider: provider})
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.TriggerMatching(ctx, source.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
	if len(provider.IndexItemCalls()) != 0 || len(provider.SearchCalls()) != 0 {
		t.Error("provider must not be called for someone else's item")
	}
}

func TestOnItemCreated_AbsorbsProviderOutage(t *testing.T) {
	t.Parallel()

	source := lostItem(uuid.New())

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return source, nil
		},
	}
	provider := &matchProviderMock{
		IndexItemFunc: func(ctx context.Context, item *domain.Item) (string, error) {
			return "", domain.NewProviderError("index", errors.New("down"))
		},
		SearchFunc: func(ctx context.Context, role domain.ItemRole, text string, imageKey *string) ([]domain.MatchCandidate, error) {
			return nil, domain.NewProviderError("search", errors.New("down"))
		},
	}

	svc := newTestService(t, testMocks{items: items, provider: provider})

	// Must not panic and must not propagate anything.
	svc.OnItemCreated(context.Background(), source.ID)

	if len(provider.SearchCalls()) != 1 {
		t.Errorf("Search calls: got %d, want 1", len(provider.SearchCalls()))
	}
}

func TestTriggerMatching_NoSearchableContentSkipsSearch(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	source := &domain.Item{
		ID:          uuid.New(),
		UserID:      owner,
		Role:        domain.ItemRoleLost,
		Description: "   ",
		Status:      domain.ItemStatusOpen,
	}

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return source, nil
		},
		SetIndexMarkersFunc: func(ctx context.Context, id uuid.UUID, indexed bool, indexID string) error {
			return nil
		},
	}
	provider := &matchProviderMock{
		IndexItemFunc: func(ctx context.Context, item *domain.Item) (string, error) {
			return item.ID.String(), nil
		},
	}

	svc := newTestService(t, testMocks{items: items, provider: provider})
	ctx := ctxutil.WithUserID(context.Background(), owner)

	created, err := svc.TriggerMatching(ctx, source.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != nil {
		t.Errorf("created = %v, want nil", created)
	}
	if len(provider.SearchCalls()) != 0 {
		t.Errorf("Search calls: got %d, want 0", len(provider.SearchCalls()))
	}
}

func TestTriggerMatching_NotifyFailureDoesNotFailPass(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	source := lostItem(owner)
	candidate := foundItem(uuid.New())

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return source, nil
		},
		GetByIDAndRoleFunc: func(ctx context.Context, id uuid.UUID, role domain.ItemRole) (*domain.Item, error) {
			return candidate, nil
		},
		SetIndexMarkersFunc: func(ctx context.Context, id uuid.UUID, indexed bool, indexID string) error {
			return nil
		},
	}
	matches := &matchRepoMock{
		GetOrCreateFunc: func(ctx context.Context, lostID, foundID uuid.UUID, score int) (*domain.Match, bool, error) {
			return &domain.Match{ID: uuid.New(), LostItemID: lostID, FoundItemID: foundID, Score: score, Status: domain.MatchStatusPending}, true, nil
		},
	}
	provider := &matchProviderMock{
		IndexItemFunc: func(ctx context.Context, item *domain.Item) (string, error) {
			return item.ID.String(), nil
		},
		SearchFunc: func(ctx context.Context, role domain.ItemRole, text string, imageKey *string) ([]domain.MatchCandidate, error) {
			return []domain.MatchCandidate{{CandidateItemID: candidate.ID, RawScore: 0.6}}, nil
		},
	}
	notify := &notifierMock{
		NotifyNewMatchesFunc: func(ctx context.Context, ms []*domain.Match) error {
			return errors.New("smtp down")
		},
	}

	svc := newTestService(t, testMocks{items: items, matches: matches, provider: provider, notify: notify})
	ctx := ctxutil.WithUserID(context.Background(), owner)

	created, err := svc.TriggerMatching(ctx, source.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 1 {
		t.Errorf("created matches: got %d, want 1", len(created))
	}
}

// ---------------------------------------------------------------------------
// Confirm / Reject
// ---------------------------------------------------------------------------

func reviewMocks(t *testing.T, m *domain.Match, lost, found *domain.Item) (*itemRepoMock, *matchRepoMock) {
	t.Helper()

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			switch id {
			case lost.ID:
				return lost, nil
			case found.ID:
				return found, nil
			}
			return nil, domain.ErrNotFound
		},
		UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, status domain.ItemStatus) (*domain.Item, error) {
			return &domain.Item{ID: id, Status: status}, nil
		},
	}
	matches := &matchRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
			if id != m.ID {
				return nil, domain.ErrNotFound
			}
			clone := *m
			return &clone, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, status domain.MatchStatus) (*domain.Match, error) {
			updated := *m
			updated.Status = status
			return &updated, nil
		},
	}
	return items, matches
}

func TestConfirm_Success(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	lost := lostItem(owner)
	found := foundItem(uuid.New())
	m := &domain.Match{
		ID:          uuid.New(),
		LostItemID:  lost.ID,
		FoundItemID: found.ID,
		Score:       80,
		Status:      domain.MatchStatusPending,
	}

	items, matches := reviewMocks(t, m, lost, found)
	svc := newTestService(t, testMocks{items: items, matches: matches})
	ctx := ctxutil.WithUserID(context.Background(), owner)

	updated, err := svc.Confirm(ctx, m.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.MatchStatusConfirmed {
		t.Errorf("status = %s, want confirmed", updated.Status)
	}

	itemCalls := items.UpdateStatusCalls()
	if len(itemCalls) != 2 {
		t.Fatalf("item UpdateStatus calls: got %d, want 2", len(itemCalls))
	}
	for _, c := range itemCalls {
		if c.Status != domain.ItemStatusMatched {
			t.Errorf("item %s status = %s, want matched", c.ID, c.Status)
		}
	}
}

func TestConfirm_ForbiddenForNonParticipant(t *testing.T) {
	t.Parallel()

	lost := lostItem(uuid.New())
	found := foundItem(uuid.New())
	m := &domain.Match{
		ID:          uuid.New(),
		LostItemID:  lost.ID,
		FoundItemID: found.ID,
		Status:      domain.MatchStatusPending,
	}

	items, matches := reviewMocks(t, m, lost, found)
	svc := newTestService(t, testMocks{items: items, matches: matches})
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.Confirm(ctx, m.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}
	if len(matches.UpdateStatusCalls()) != 0 {
		t.Errorf("UpdateStatus calls: got %d, want 0", len(matches.UpdateStatusCalls()))
	}
}

func TestConfirm_InvalidTransition(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	lost := lostItem(owner)
	found := foundItem(uuid.New())
	m := &domain.Match{
		ID:          uuid.New(),
		LostItemID:  lost.ID,
		FoundItemID: found.ID,
		Status:      domain.MatchStatusRejected,
	}

	items, matches := reviewMocks(t, m, lost, found)
	svc := newTestService(t, testMocks{items: items, matches: matches})
	ctx := ctxutil.WithUserID(context.Background(), owner)

	_, err := svc.Confirm(ctx, m.ID)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("error = %v, want ErrInvalidTransition", err)
	}

	var te *domain.InvalidTransitionError
	if !errors.As(err, &te) {
		t.Fatalf("error type = %T, want *domain.InvalidTransitionError", err)
	}
	if te.From != "rejected" || te.To != "confirmed" {
		t.Errorf("transition = %s->%s, want rejected->confirmed", te.From, te.To)
	}
	if len(matches.UpdateStatusCalls()) != 0 {
		t.Errorf("UpdateStatus calls: got %d, want 0", len(matches.UpdateStatusCalls()))
	}
}

func TestReject_Success(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	lost := lostItem(uuid.New())
	found := foundItem(owner)
	m := &domain.Match{
		ID:          uuid.New(),
		LostItemID:  lost.ID,
		FoundItemID: found.ID,
		Status:      domain.MatchStatusPending,
	}

	items, matches := reviewMocks(t, m, lost, found)
	svc := newTestService(t, testMocks{items: items, matches: matches})
	ctx := ctxutil.WithUserID(context.Background(), owner)

	updated, err := svc.Reject(ctx, m.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.MatchStatusRejected {
		t.Errorf("status = %s, want rejected", updated.Status)
	}

	// Rejection never touches item statuses.
	if len(items.UpdateStatusCalls()) != 0 {
		t.Errorf("item UpdateStatus calls: got %d, want 0", len(items.UpdateStatusCalls()))
	}
}

func TestReject_ConfirmedIsTerminal(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	lost := lostItem(owner)
	found := foundItem(uuid.New())
	m := &domain.Match{
		ID:          uuid.New(),
		LostItemID:  lost.ID,
		FoundItemID: found.ID,
		Status:      domain.MatchStatusConfirmed,
	}

	items, matches := reviewMocks(t, m, lost, found)
	svc := newTestService(t, testMocks{items: items, matches: matches})
	ctx := ctxutil.WithUserID(context.Background(), owner)

	_, err := svc.Reject(ctx, m.ID)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("error = %v, want ErrInvalidTransition", err)
	}
}

func TestConfirm_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testMocks{})

	_, err := svc.Confirm(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

// ---------------------------------------------------------------------------
// ListMatches
// ---------------------------------------------------------------------------

func TestListMatches_DefaultLimit(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	matches := &matchRepoMock{
		ListForUserFunc: func(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*domain.Match, error) {
			if limit != DefaultLimit {
				t.Errorf("limit = %d, want %d", limit, DefaultLimit)
			}
			return []*domain.Match{}, nil
		},
	}

	svc := newTestService(t, testMocks{matches: matches})
	ctx := ctxutil.WithUserID(context.Background(), userID)

	if _, err := svc.ListMatches(ctx, ListMatchesInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListMatches_NegativeLimit(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testMocks{})
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.ListMatches(ctx, ListMatchesInput{Limit: -1})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}
