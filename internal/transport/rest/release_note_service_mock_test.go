package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/relnotes-backend/internal/service/releasenote"
)

var _ releaseNoteService = &releaseNoteServiceMock{}

type releaseNoteServiceMock struct {
	GenerateFunc func(ctx context.Context, input releasenote.GenerateInput) (*releasenote.Result, error)

	calls struct {
		Generate []struct {
			Ctx   context.Context
			Input releasenote.GenerateInput
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *releaseNoteServiceMock) Generate(ctx context.Context, input releasenote.GenerateInput) (*releasenote.Result, error) {
	if mock.GenerateFunc == nil {
		panic("releaseNoteServiceMock.GenerateFunc: method is nil but releaseNoteService.Generate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input releasenote.GenerateInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, input)
}

func (mock *releaseNoteServiceMock) GenerateCalls() []struct {
	Ctx   context.Context
	Input releasenote.GenerateInput
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
