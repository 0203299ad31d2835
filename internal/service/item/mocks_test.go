package item

import (
	"context"
	"sync"

	"github.com/google/uuid"

	repo "github.com/novahq/nova-backend/internal/adapter/postgres/item"
	"github.com/novahq/nova-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateFunc       func(ctx context.Context, it *domain.Item) (*domain.Item, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	ListFunc         func(ctx context.Context, f repo.Filter) ([]*domain.Item, int, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.ItemStatus) (*domain.Item, error)

	calls struct {
		Create []struct {
			It *domain.Item
		}
		GetByID []struct {
			ID uuid.UUID
		}
		List []struct {
			F repo.Filter
		}
		UpdateStatus []struct {
			ID     uuid.UUID
			Status domain.ItemStatus
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockList         sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *itemRepoMock) Create(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct{ It *domain.Item }{It: it}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, it)
}

func (mock *itemRepoMock) CreateCalls() []struct{ It *domain.Item } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *itemRepoMock) List(ctx context.Context, f repo.Filter) ([]*domain.Item, int, error) {
	if mock.ListFunc == nil {
		panic("itemRepoMock.ListFunc: method is nil but itemRepo.List was just called")
	}
	callInfo := struct{ F repo.Filter }{F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *itemRepoMock) ListCalls() []struct{ F repo.Filter } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
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

var _ imageStore = &imageStoreMock{}

type imageStoreMock struct {
	SaveFunc   func(ctx context.Context, data []byte) (string, error)
	DeleteFunc func(ctx context.Context, key string) error

	calls struct {
		Save []struct {
			Data []byte
		}
		Delete []struct {
			Key string
		}
	}
	lockSave   sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *imageStoreMock) Save(ctx context.Context, data []byte) (string, error) {
	if mock.SaveFunc == nil {
		panic("imageStoreMock.SaveFunc: method is nil but imageStore.Save was just called")
	}
	callInfo := struct{ Data []byte }{Data: data}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, data)
}

func (mock *imageStoreMock) SaveCalls() []struct{ Data []byte } {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *imageStoreMock) Delete(ctx context.Context, key string) error {
	callInfo := struct{ Key string }{Key: key}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	if mock.DeleteFunc == nil {
		return nil
	}
	return mock.DeleteFunc(ctx, key)
}

func (mock *imageStoreMock) DeleteCalls() []struct{ Key string } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ orchestrator = &orchestratorMock{}

type orchestratorMock struct {
	OnItemCreatedFunc func(ctx context.Context, itemID uuid.UUID)

	calls struct {
		OnItemCreated []struct {
			ItemID uuid.UUID
		}
	}
	lockOnItemCreated sync.RWMutex
}

func (mock *orchestratorMock) OnItemCreated(ctx context.Context, itemID uuid.UUID) {
	callInfo := struct{ ItemID uuid.UUID }{ItemID: itemID}
	mock.lockOnItemCreated.Lock()
	mock.calls.OnItemCreated = append(mock.calls.OnItemCreated, callInfo)
	mock.lockOnItemCreated.Unlock()
	if mock.OnItemCreatedFunc != nil {
		mock.OnItemCreatedFunc(ctx, itemID)
	}
}

func (mock *orchestratorMock) OnItemCreatedCalls() []struct{ ItemID uuid.UUID } {
	mock.lockOnItemCreated.RLock()
	calls := mock.calls.OnItemCreated
	mock.lockOnItemCreated.RUnlock()
	return calls
}
