package project

import (
	"context"
	"sync"

	"github.com/heartmarshall/relnotes-backend/internal/domain"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	DeleteOneFunc func(ctx context.Context, id int64) error
	LoadFunc      func(ctx context.Context) ([]domain.Project, error)
	SaveOneFunc   func(ctx context.Context, p domain.Project) (domain.Project, error)

	calls struct {
		DeleteOne []struct {
			Ctx context.Context
			ID  int64
		}
		Load []struct {
			Ctx context.Context
		}
		SaveOne []struct {
			Ctx context.Context
			P   domain.Project
		}
	}
	lockDeleteOne sync.RWMutex
	lockLoad      sync.RWMutex
	lockSaveOne   sync.RWMutex
}

func (mock *projectRepoMock) DeleteOne(ctx context.Context, id int64) error {
	if mock.DeleteOneFunc == nil {
		panic("projectRepoMock.DeleteOneFunc: method is nil but projectRepo.DeleteOne was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDeleteOne.Lock()
	mock.calls.DeleteOne = append(mock.calls.DeleteOne, callInfo)
	mock.lockDeleteOne.Unlock()
	return mock.DeleteOneFunc(ctx, id)
}

func (mock *projectRepoMock) DeleteOneCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteOne.RLock()
	calls := mock.calls.DeleteOne
	mock.lockDeleteOne.RUnlock()
	return calls
}

func (mock *projectRepoMock) Load(ctx context.Context) ([]domain.Project, error) {
	if mock.LoadFunc == nil {
		panic("projectRepoMock.LoadFunc: method is nil but projectRepo.Load was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx)
}

func (mock *projectRepoMock) LoadCalls() []struct {
	Ctx context.Context
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *projectRepoMock) SaveOne(ctx context.Context, p domain.Project) (domain.Project, error) {
	if mock.SaveOneFunc == nil {
		panic("projectRepoMock.SaveOneFunc: method is nil but projectRepo.SaveOne was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Project
	}{Ctx: ctx, P: p}
	mock.lockSaveOne.Lock()
	mock.calls.SaveOne = append(mock.calls.SaveOne, callInfo)
	mock.lockSaveOne.Unlock()
	return mock.SaveOneFunc(ctx, p)
}

func (mock *projectRepoMock) SaveOneCalls() []struct {
	Ctx context.Context
	P   domain.Project
} {
	mock.lockSaveOne.RLock()
	calls := mock.calls.SaveOne
	mock.lockSaveOne.RUnlock()
	return calls
}
