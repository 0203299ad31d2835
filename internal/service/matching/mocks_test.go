package matching

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	GetByIDAndRoleFunc  func(ctx context.Context, id uuid.UUID, role domain.ItemRole) (*domain.Item, error)
	UpdateStatusFunc    func(ctx context.Context, id uuid.UUID, status domain.ItemStatus) (*domain.Item, error)
	SetIndexMarkersFunc func(ctx context.Context, id uuid.UUID, indexed bool, indexID string) error

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetByIDAndRole []struct {
			ID   uuid.UUID
			Role domain.ItemRole
		}
		UpdateStatus []struct {
			ID     uuid.UUID
			Status domain.ItemStatus
		}
		SetIndexMarkers []struct {
			ID      uuid.UUID
			Indexed bool
			IndexID string
		}
	}
	lockGetByID         sync.RWMutex
	lockGetByIDAndRole  sync.RWMutex
	lockUpdateStatus    sync.RWMutex
	lockSetIndexMarkers sync.RWMutex
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itemRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) GetByIDAndRole(ctx context.Context, id uuid.UUID, role domain.ItemRole) (*domain.Item, error) {
	if mock.GetByIDAndRoleFunc == nil {
		panic("itemRepoMock.GetByIDAndRoleFunc: method is nil but itemRepo.GetByIDAndRole was just called")
	}
	callInfo := struct {
		ID   uuid.UUID
		Role domain.ItemRole
	}{ID: id, Role: role}
	mock.lockGetByIDAndRole.Lock()
	mock.calls.GetByIDAndRole = append(mock.calls.GetByIDAndRole, callInfo)
	mock.lockGetByIDAndRole.Unlock()
	return mock.GetByIDAndRoleFunc(ctx, id, role)
}

func (mock *itemRepoMock) GetByIDAndRoleCalls() []struct {
	ID   uuid.UUID
	Role domain.ItemRole
} {
	mock.lockGetByIDAndRole.RLock()
	calls := mock.calls.GetByIDAndRole
	mock.lockGetByIDAndRole.RUnlock()
	return calls
}

func (mock *itemRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) (*domain.Item, error) {
	if mock.UpdateStatusFunc == nil {
		panic("itemRepoMock.UpdateStatusFunc: method is nil but itemRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Status domain.ItemStatus
	}{ID: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *itemRepoMock) UpdateStatusCalls() []struct {
	ID     uuid.UUID
	Status domain.ItemStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *itemRepoMock) SetIndexMarkers(ctx context.Context, id uuid.UUID, indexed bool, indexID string) error {
	if mock.SetIndexMarkersFunc == nil {
		panic("itemRepoMock.SetIndexMarkersFunc: method is nil but itemRepo.SetIndexMarkers was just called")
	}
	callInfo := struct {
		ID      uuid.UUID
		Indexed bool
		IndexID string
	}{ID: id, Indexed: indexed, IndexID: indexID}
	mock.lockSetIndexMarkers.Lock()
	mock.calls.SetIndexMarkers = append(mock.calls.SetIndexMarkers, callInfo)
	mock.lockSetIndexMarkers.Unlock()
	return mock.SetIndexMarkersFunc(ctx, id, indexed, indexID)
}

func (mock *itemRepoMock) SetIndexMarkersCalls() []struct {
	ID      uuid.UUID
	Indexed bool
	IndexID string
} {
	mock.lockSetIndexMarkers.RLock()
	calls := mock.calls.SetIndexMarkers
	mock.lockSetIndexMarkers.RUnlock()
	return calls
}

var _ matchRepo = &matchRepoMock{}

type matchRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	GetOrCreateFunc func(ctx context.Context, lostItemID, foundItemID uuid.UUID, score int) (*domain.Match, bool, error)
	ListForUserFunc func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Match, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.MatchStatus) (*domain.Match, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetOrCreate []struct {
			LostItemID  uuid.UUID
			FoundItemID uuid.UUID
			Score       int
		}
		ListForUser []struct {
			UserID uuid.UUID
			Limit  int
			Offset int
		}
		UpdateStatus []struct {
			ID     uuid.UUID
			Status domain.MatchStatus
		}
	}
	lockGetByID      sync.RWMutex
	lockGetOrCreate  sync.RWMutex
	lockListForUser  sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *matchRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	if mock.GetByIDFunc == nil {
		panic("matchRepoMock.GetByIDFunc: method is nil but matchRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *matchRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *matchRepoMock) GetOrCreate(ctx context.Context, lostItemID, foundItemID uuid.UUID, score int) (*domain.Match, bool, error) {
	if mock.GetOrCreateFunc == nil {
		panic("matchRepoMock.GetOrCreateFunc: method is nil but matchRepo.GetOrCreate was just called")
	}
	callInfo := struct {
		LostItemID  uuid.UUID
		FoundItemID uuid.UUID
		Score       int
	}{LostItemID: lostItemID, FoundItemID: foundItemID, Score: score}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx, lostItemID, foundItemID, score)
}

func (mock *matchRepoMock) GetOrCreateCalls() []struct {
	LostItemID  uuid.UUID
	FoundItemID uuid.UUID
	Score       int
} {
	mock.lockGetOrCreate.RLock()
	calls := mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}

func (mock *matchRepoMock) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Match, error) {
	if mock.ListForUserFunc == nil {
		panic("matchRepoMock.ListForUserFunc: method is nil but matchRepo.ListForUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Limit  int
		Offset int
	}{UserID: userID, Limit: limit, Offset: offset}
	mock.lockListForUser.Lock()
	mock.calls.ListForUser = append(mock.calls.ListForUser, callInfo)
	mock.lockListForUser.Unlock()
	return mock.ListForUserFunc(ctx, userID, limit, offset)
}

func (mock *matchRepoMock) ListForUserCalls() []struct {
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListForUser.RLock()
	calls := mock.calls.ListForUser
	mock.lockListForUser.RUnlock()
	return calls
}

func (mock *matchRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MatchStatus) (*domain.Match, error) {
	if mock.UpdateStatusFunc == nil {
		panic("matchRepoMock.UpdateStatusFunc: method is nil but matchRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Status domain.MatchStatus
	}{ID: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *matchRepoMock) UpdateStatusCalls() []struct {
	ID     uuid.UUID
	Status domain.MatchStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

var _ matchProvider = &matchProviderMock{}

type matchProviderMock struct {
	IndexItemFunc func(ctx context.Context, item *domain.Item) (string, error)
	SearchFunc    func(ctx context.Context, role domain.ItemRole, text string, imageKey *string) ([]domain.MatchCandidate, error)

	calls struct {
		IndexItem []struct {
			Item *domain.Item
		}
		Search []struct {
			Role     domain.ItemRole
			Text     string
			ImageKey *string
		}
	}
	lockIndexItem sync.RWMutex
	lockSearch    sync.RWMutex
}

func (mock *matchProviderMock) IndexItem(ctx context.Context, item *domain.Item) (string, error) {
	if mock.IndexItemFunc == nil {
		panic("matchProviderMock.IndexItemFunc: method is nil but matchProvider.IndexItem was just called")
	}
	callInfo := struct{ Item *domain.Item }{Item: item}
	mock.lockIndexItem.Lock()
	mock.calls.IndexItem = append(mock.calls.IndexItem, callInfo)
	mock.lockIndexItem.Unlock()
	return mock.IndexItemFunc(ctx, item)
}

func (mock *matchProviderMock) IndexItemCalls() []struct{ Item *domain.Item } {
	mock.lockIndexItem.RLock()
	calls := mock.calls.IndexItem
	mock.lockIndexItem.RUnlock()
	return calls
}

func (mock *matchProviderMock) Search(ctx context.Context, role domain.ItemRole, text string, imageKey *string) ([]domain.MatchCandidate, error) {
	if mock.SearchFunc == nil {
		panic("matchProviderMock.SearchFunc: method is nil but matchProvider.Search was just called")
	}
	callInfo := struct {
		Role     domain.ItemRole
		Text     string
		ImageKey *string
	}{Role: role, Text: text, ImageKey: imageKey}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, role, text, imageKey)
}

func (mock *matchProviderMock) SearchCalls() []struct {
	Role     domain.ItemRole
	Text     string
	ImageKey *string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyNewMatchesFunc func(ctx context.Context, matches []*domain.Match) error

	calls struct {
		NotifyNewMatches []struct {
			Matches []*domain.Match
		}
	}
	lockNotifyNewMatches sync.RWMutex
}

func (mock *notifierMock) NotifyNewMatches(ctx context.Context, matches []*domain.Match) error {
	if mock.NotifyNewMatchesFunc == nil {
		panic("notifierMock.NotifyNewMatchesFunc: method is nil but notifier.NotifyNewMatches was just called")
	}
	callInfo := struct{ Matches []*domain.Match }{Matches: matches}
	mock.lockNotifyNewMatches.Lock()
	mock.calls.NotifyNewMatches = append(mock.calls.NotifyNewMatches, callInfo)
	mock.lockNotifyNewMatches.Unlock()
	return mock.NotifyNewMatchesFunc(ctx, matches)
}

func (mock *notifierMock) NotifyNewMatchesCalls() []struct{ Matches []*domain.Match } {
	mock.lockNotifyNewMatches.RLock()
	calls := mock.calls.NotifyNewMatches
	mock.lockNotifyNewMatches.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback directly, no transaction semantics.
type txManagerMock struct{}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
