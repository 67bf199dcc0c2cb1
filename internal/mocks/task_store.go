package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/task-tracker-api/internal/domain"
	"github.com/phrazzld/task-tracker-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// Unconfigured methods return store.ErrTaskNotFound or empty results.
type MockTaskStore struct {
	CreateFn       func(ctx context.Context, task *domain.Task) error
	ListFn         func(ctx context.Context, ownerID int64, filter domain.TaskFilter) ([]*domain.Task, error)
	GetByIDFn      func(ctx context.Context, ownerID, id int64) (*domain.Task, error)
	UpdateStatusFn func(ctx context.Context, ownerID, id int64, status domain.TaskStatus) (*domain.Task, error)
	DeleteFn       func(ctx context.Context, ownerID, id int64) error
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements store.TaskStore
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return nil
}

// List implements store.TaskStore
func (m *MockTaskStore) List(ctx context.Context, ownerID int64, filter domain.TaskFilter) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID, filter)
	}
	return []*domain.Task{}, nil
}

// GetByID implements store.TaskStore
func (m *MockTaskStore) GetByID(ctx context.Context, ownerID, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, ownerID, id)
	}
	return nil, store.ErrTaskNotFound
}

// UpdateStatus implements store.TaskStore
func (m *MockTaskStore) UpdateStatus(
	ctx context.Context,
	ownerID, id int64,
	status domain.TaskStatus,
) (*domain.Task, error) {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, ownerID, id, status)
	}
	return nil, store.ErrTaskNotFound
}

// Delete implements store.TaskStore
func (m *MockTaskStore) Delete(ctx context.Context, ownerID, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, id)
	}
	return store.ErrTaskNotFound
}

// WithTx returns the same mock; transactions are not simulated.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
