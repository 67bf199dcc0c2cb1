package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/task-tracker-api/internal/domain"
	"github.com/phrazzld/task-tracker-api/internal/platform/logger"
	"github.com/phrazzld/task-tracker-api/internal/service/auth"
	"github.com/phrazzld/task-tracker-api/internal/store"
)

// TaskService manages tasks on behalf of their owner. Every operation is
// scoped to owner; another user's task is reported as store.ErrTaskNotFound.
type TaskService interface {
	CreateTask(ctx context.Context, title, description string, owner *domain.User) (*domain.Task, error)
	ListTasks(ctx context.Context, filter domain.TaskFilter, owner *domain.User) ([]*domain.Task, error)
	GetTask(ctx context.Context, id int64, owner *domain.User) (*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id int64, status domain.TaskStatus, owner *domain.User) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64, owner *domain.User) error
}

type taskServiceImpl struct {
	taskStore store.TaskStore
	db        *sql.DB
	logger    *slog.Logger
}

// NewTaskService creates a TaskService. db is used to run multi-step
// operations in a transaction.
func NewTaskService(taskStore store.TaskStore, db *sql.DB, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", domain.ErrValidation)
	}
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &taskServiceImpl{
		taskStore: taskStore,
		db:        db,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// log prefers the request-scoped logger when the middleware installed one.
func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

func (s *taskServiceImpl) wrap(ctx context.Context, op, msg string, err error) error {
	if errors.Is(err, store.ErrTaskNotFound) {
		return err
	}
	s.log(ctx).Error(msg, slog.String("operation", op), slog.String("error", err.Error()))
	return NewServiceError("task", op, msg, err)
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	title, description string,
	owner *domain.User,
) (*domain.Task, error) {
	if owner == nil {
		return nil, ErrMissingOwner
	}

	task, err := domain.NewTask(title, description, owner.ID)
	if err != nil {
		return nil, toValidationError("title", err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		// The account was deleted after the request authenticated.
		if errors.Is(err, store.ErrMissingReference) {
			return nil, auth.ErrInvalidToken
		}
		return nil, s.wrap(ctx, "create", "failed to save task", err)
	}

	s.log(ctx).Info("task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", owner.ID))
	return task, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(
	ctx context.Context,
	filter domain.TaskFilter,
	owner *domain.User,
) ([]*domain.Task, error) {
	if owner == nil {
		return nil, ErrMissingOwner
	}
	if filter.Status != nil {
		if _, err := domain.ParseTaskStatus(string(*filter.Status)); err != nil {
			return nil, err
		}
	}

	tasks, err := s.taskStore.List(ctx, owner.ID, filter)
	if err != nil {
		return nil, s.wrap(ctx, "list", "failed to list tasks", err)
	}
	return tasks, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64, owner *domain.User) (*domain.Task, error) {
	if owner == nil {
		return nil, ErrMissingOwner
	}

	task, err := s.taskStore.GetByID(ctx, owner.ID, id)
	if err != nil {
		return nil, s.wrap(ctx, "get", "failed to get task", err)
	}
	return task, nil
}

// UpdateTaskStatus implements TaskService.UpdateTaskStatus
func (s *taskServiceImpl) UpdateTaskStatus(
	ctx context.Context,
	id int64,
	status domain.TaskStatus,
	owner *domain.User,
) (*domain.Task, error) {
	if owner == nil {
		return nil, ErrMissingOwner
	}
	if _, err := domain.ParseTaskStatus(string(status)); err != nil {
		return nil, err
	}

	var updated *domain.Task
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.taskStore.WithTx(tx)

		if _, err := txStore.GetByID(ctx, owner.ID, id); err != nil {
			return err
		}

		var err error
		updated, err = txStore.UpdateStatus(ctx, owner.ID, id, status)
		return err
	})
	if err != nil {
		return nil, s.wrap(ctx, "update status", "failed to update task status", err)
	}

	s.log(ctx).Info("task status updated",
		slog.Int64("task_id", id),
		slog.String("status", string(status)))
	return updated, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64, owner *domain.User) error {
	if owner == nil {
		return ErrMissingOwner
	}

	if err := s.taskStore.Delete(ctx, owner.ID, id); err != nil {
		return s.wrap(ctx, "delete", "failed to delete task", err)
	}

	s.log(ctx).Info("task deleted",
		slog.Int64("task_id", id),
		slog.Int64("user_id", owner.ID))
	return nil
}
