package issue

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

var _ issueRepo = &issueRepoMock{}

type issueRepoMock struct {
	InsertFunc     func(ctx context.Context, in domain.NewIssue) (*domain.Issue, error)
	FindFunc       func(ctx context.Context, filter domain.IssueFilter) ([]*domain.Issue, error)
	UpdateByIDFunc func(ctx context.Context, id uuid.UUID, update domain.IssueUpdate) (*domain.Issue, error)
	DeleteByIDFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Insert []struct {
			In domain.NewIssue
		}
		Find []struct {
			Filter domain.IssueFilter
		}
		UpdateByID []struct {
			ID     uuid.UUID
			Update domain.IssueUpdate
		}
		DeleteByID []struct {
			ID uuid.UUID
		}
	}
	lockInsert     sync.RWMutex
	lockFind       sync.RWMutex
	lockUpdateByID sync.RWMutex
	lockDeleteByID sync.RWMutex
}

func (mock *issueRepoMock) Insert(ctx context.Context, in domain.NewIssue) (*domain.Issue, error) {
	if mock.InsertFunc == nil {
		panic("issueRepoMock.InsertFunc: method is nil but issueRepo.Insert was just called")
	}
	callInfo := struct {
		In domain.NewIssue
	}{In: in}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, in)
}

func (mock *issueRepoMock) InsertCalls() []struct {
	In domain.NewIssue
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *issueRepoMock) Find(ctx context.Context, filter domain.IssueFilter) ([]*domain.Issue, error) {
	if mock.FindFunc == nil {
		panic("issueRepoMock.FindFunc: method is nil but issueRepo.Find was just called")
	}
	callInfo := struct {
		Filter domain.IssueFilter
	}{Filter: filter}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, filter)
}

func (mock *issueRepoMock) FindCalls() []struct {
	Filter domain.IssueFilter
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *issueRepoMock) UpdateByID(ctx context.Context, id uuid.UUID, update domain.IssueUpdate) (*domain.Issue, error) {
	if mock.UpdateByIDFunc == nil {
		panic("issueRepoMock.UpdateByIDFunc: method is nil but issueRepo.UpdateByID was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Update domain.IssueUpdate
	}{ID: id, Update: update}
	mock.lockUpdateByID.Lock()
	mock.calls.UpdateByID = append(mock.calls.UpdateByID, callInfo)
	mock.lockUpdateByID.Unlock()
	return mock.UpdateByIDFunc(ctx, id, update)
}

func (mock *issueRepoMock) UpdateByIDCalls() []struct {
	ID     uuid.UUID
	Update domain.IssueUpdate
} {
	mock.lockUpdateByID.RLock()
	calls := mock.calls.UpdateByID
	mock.lockUpdateByID.RUnlock()
	return calls
}

func (mock *issueRepoMock) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteByIDFunc == nil {
		panic("issueRepoMock.DeleteByIDFunc: method is nil but issueRepo.DeleteByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockDeleteByID.Lock()
	mock.calls.DeleteByID = append(mock.calls.DeleteByID, callInfo)
	mock.lockDeleteByID.Unlock()
	return mock.DeleteByIDFunc(ctx, id)
}

func (mock *issueRepoMock) DeleteByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockDeleteByID.RLock()
	calls := mock.calls.DeleteByID
	mock.lockDeleteByID.RUnlock()
	return calls
}
