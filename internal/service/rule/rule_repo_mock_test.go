package rule

import (
	"context"
	"sync"

	"github.com/heartmarshall/edusphere-backend/internal/domain"
)

var _ ruleRepo = &ruleRepoMock{}

type ruleRepoMock struct {
	AppendFunc func(ctx context.Context, rule domain.Rule) domain.Rule
	CountFunc  func(ctx context.Context) int
	ListFunc   func(ctx context.Context, language string) []domain.Rule

	calls struct {
		Append []struct {
			Ctx  context.Context
			Rule domain.Rule
		}
		Count []struct {
			Ctx context.Context
		}
		List []struct {
			Ctx      context.Context
			Language string
		}
	}
	lockAppend sync.RWMutex
	lockCount  sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *ruleRepoMock) Append(ctx context.Context, rule domain.Rule) domain.Rule {
	if mock.AppendFunc == nil {
		panic("ruleRepoMock.AppendFunc: method is nil but ruleRepo.Append was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Rule domain.Rule
	}{Ctx: ctx, Rule: rule}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, rule)
}

func (mock *ruleRepoMock) AppendCalls() []struct {
	Ctx  context.Context
	Rule domain.Rule
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *ruleRepoMock) Count(ctx context.Context) int {
	if mock.CountFunc == nil {
		panic("ruleRepoMock.CountFunc: method is nil but ruleRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *ruleRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *ruleRepoMock) List(ctx context.Context, language string) []domain.Rule {
	if mock.ListFunc == nil {
		panic("ruleRepoMock.ListFunc: method is nil but ruleRepo.List was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Language string
	}{Ctx: ctx, Language: language}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, language)
}

func (mock *ruleRepoMock) ListCalls() []struct {
	Ctx      context.Context
	Language string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
