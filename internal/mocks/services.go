package mocks

import (
	"context"

	"github.com/phrazzld/task-tracker-api/internal/domain"
	"github.com/phrazzld/task-tracker-api/internal/service"
	"github.com/phrazzld/task-tracker-api/internal/store"
)

// MockAuthService implements service.AuthService for handler and middleware tests.
type MockAuthService struct {
	SignUpFn              func(ctx context.Context, username, password string) (*domain.User, error)
	ValidateCredentialsFn func(ctx context.Context, username, password string) (string, bool, error)
	SignInFn              func(ctx context.Context, username, password string) (*service.SignInResult, error)
	AuthenticateFn        func(ctx context.Context, token string) (*domain.User, error)
	DeleteAccountFn       func(ctx context.Context, user *domain.User) error
}

var _ service.AuthService = (*MockAuthService)(nil)

func (m *MockAuthService) SignUp(ctx context.Context, username, password string) (*domain.User, error) {
	if m.SignUpFn != nil {
		return m.SignUpFn(ctx, username, password)
	}
	return &domain.User{ID: 1, Username: username}, nil
}

func (m *MockAuthService) ValidateCredentials(ctx context.Context, username, password string) (string, bool, error) {
	if m.ValidateCredentialsFn != nil {
		return m.ValidateCredentialsFn(ctx, username, password)
	}
	return "", false, nil
}

func (m *MockAuthService) SignIn(ctx context.Context, username, password string) (*service.SignInResult, error) {
	if m.SignInFn != nil {
		return m.SignInFn(ctx, username, password)
	}
	return nil, service.ErrInvalidCredentials
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, token)
	}
	return nil, domain.ErrUnauthorized
}

func (m *MockAuthService) DeleteAccount(ctx context.Context, user *domain.User) error {
	if m.DeleteAccountFn != nil {
		return m.DeleteAccountFn(ctx, user)
	}
	return nil
}

// MockTaskService implements service.TaskService. Unset methods behave as if
// the caller owns no tasks.
type MockTaskService struct {
	CreateTaskFn       func(ctx context.Context, title, description string, owner *domain.User) (*domain.Task, error)
	ListTasksFn        func(ctx context.Context, filter domain.TaskFilter, owner *domain.User) ([]*domain.Task, error)
	GetTaskFn          func(ctx context.Context, id int64, owner *domain.User) (*domain.Task, error)
	UpdateTaskStatusFn func(ctx context.Context, id int64, status domain.TaskStatus, owner *domain.User) (*domain.Task, error)
	DeleteTaskFn       func(ctx context.Context, id int64, owner *domain.User) error
}

var _ service.TaskService = (*MockTaskService)(nil)

func (m *MockTaskService) CreateTask(
	ctx context.Context,
	title, description string,
	owner *domain.User,
) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, title, description, owner)
	}
	return domain.NewTask(title, description, owner.ID)
}

func (m *MockTaskService) ListTasks(
	ctx context.Context,
	filter domain.TaskFilter,
	owner *domain.User,
) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, filter, owner)
	}
	return []*domain.Task{}, nil
}

func (m *MockTaskService) GetTask(ctx context.Context, id int64, owner *domain.User) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id, owner)
	}
	return nil, store.ErrTaskNotFound
}

func (m *MockTaskService) UpdateTaskStatus(
	ctx context.Context,
	id int64,
	status domain.TaskStatus,
	owner *domain.User,
) (*domain.Task, error) {
	if m.UpdateTaskStatusFn != nil {
		return m.UpdateTaskStatusFn(ctx, id, status, owner)
	}
	return nil, store.ErrTaskNotFound
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id int64, owner *domain.User) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id, owner)
	}
	return store.ErrTaskNotFound
}
