package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/task-tracker-api/internal/domain"
	"github.com/phrazzld/task-tracker-api/internal/mocks"
	"github.com/phrazzld/task-tracker-api/internal/platform/sqlite"
	"github.com/phrazzld/task-tracker-api/internal/service"
	"github.com/phrazzld/task-tracker-api/internal/service/auth"
	"github.com/phrazzld/task-tracker-api/internal/store"
	"github.com/phrazzld/task-tracker-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taskFixture struct {
	tasks service.TaskService
	alice *domain.User
	bob   *domain.User
}

func newTaskFixture(t *testing.T) taskFixture {
	t.Helper()
	ctx := context.Background()
	db := testdb.OpenSQLiteWithT(t)
	users := sqlite.NewUserStore(db, nil)

	alice, err := domain.NewUser("alice", "hash", "salt")
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, alice))
	bob, err := domain.NewUser("bob", "hash", "salt")
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, bob))

	tasks, err := service.NewTaskService(sqlite.NewTaskStore(db, nil), db, nil)
	require.NoError(t, err)
	return taskFixture{tasks: tasks, alice: alice, bob: bob}
}

func TestCreateTaskForcesOpenAndOwner(t *testing.T) {
	f := newTaskFixture(t)

	task, err := f.tasks.CreateTask(context.Background(), "A", "", f.alice)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusOpen, task.Status)
	assert.Equal(t, f.alice.ID, task.UserID)
	assert.NotZero(t, task.ID)
}

func TestCreateTaskForDeletedOwner(t *testing.T) {
	f := newTaskFixture(t)
	ghost := &domain.User{ID: 999, Username: "ghost"}

	_, err := f.tasks.CreateTask(context.Background(), "A", "", ghost)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreateTaskValidation(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	_, err := f.tasks.CreateTask(ctx, "", "desc", f.alice)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.tasks.CreateTask(ctx, "A", "", nil)
	assert.ErrorIs(t, err, service.ErrMissingOwner)
}

func TestTaskOwnershipScoping(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task, err := f.tasks.CreateTask(ctx, "Private", "", f.alice)
	require.NoError(t, err)

	_, err = f.tasks.GetTask(ctx, task.ID, f.bob)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	_, err = f.tasks.UpdateTaskStatus(ctx, task.ID, domain.TaskStatusDone, f.bob)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	assert.ErrorIs(t, f.tasks.DeleteTask(ctx, task.ID, f.bob), store.ErrTaskNotFound)

	bobsTasks, err := f.tasks.ListTasks(ctx, domain.TaskFilter{}, f.bob)
	require.NoError(t, err)
	assert.Empty(t, bobsTasks)

	got, err := f.tasks.GetTask(ctx, task.ID, f.alice)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusOpen, got.Status)
}

func TestUpdateTaskStatus(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task, err := f.tasks.CreateTask(ctx, "A", "", f.alice)
	require.NoError(t, err)

	updated, err := f.tasks.UpdateTaskStatus(ctx, task.ID, domain.TaskStatusInProgress, f.alice)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusInProgress, updated.Status)
	assert.Equal(t, task.ID, updated.ID)

	_, err = f.tasks.UpdateTaskStatus(ctx, task.ID, domain.TaskStatus("CLOSED"), f.alice)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.tasks.UpdateTaskStatus(ctx, 9999, domain.TaskStatusDone, f.alice)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestUpdateTaskStatusConcurrent(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	aliceTask, err := f.tasks.CreateTask(ctx, "A", "", f.alice)
	require.NoError(t, err)
	bobTask, err := f.tasks.CreateTask(ctx, "B", "", f.bob)
	require.NoError(t, err)

	statuses := []domain.TaskStatus{domain.TaskStatusInProgress, domain.TaskStatusDone, domain.TaskStatusOpen}
	const workers = 40
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			task, owner := aliceTask, f.alice
			if i%2 == 1 {
				task, owner = bobTask, f.bob
			}
			_, err := f.tasks.UpdateTaskStatus(ctx, task.ID, statuses[i%len(statuses)], owner)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	got, err := f.tasks.GetTask(ctx, aliceTask.ID, f.alice)
	require.NoError(t, err)
	assert.True(t, got.Status.IsValid())
}

func TestListTasksFilters(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	a, err := f.tasks.CreateTask(ctx, "Buy milk", "", f.alice)
	require.NoError(t, err)
	b, err := f.tasks.CreateTask(ctx, "Walk dog", "", f.alice)
	require.NoError(t, err)
	_, err = f.tasks.UpdateTaskStatus(ctx, b.ID, domain.TaskStatusDone, f.alice)
	require.NoError(t, err)

	done := domain.TaskStatusDone
	list, err := f.tasks.ListTasks(ctx, domain.TaskFilter{Status: &done}, f.alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	list, err = f.tasks.ListTasks(ctx, domain.TaskFilter{Search: "milk"}, f.alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)

	bogus := domain.TaskStatus("LATER")
	_, err = f.tasks.ListTasks(ctx, domain.TaskFilter{Status: &bogus}, f.alice)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeleteTask(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task, err := f.tasks.CreateTask(ctx, "A", "", f.alice)
	require.NoError(t, err)

	require.NoError(t, f.tasks.DeleteTask(ctx, task.ID, f.alice))
	assert.ErrorIs(t, f.tasks.DeleteTask(ctx, task.ID, f.alice), store.ErrTaskNotFound)
}

func TestTaskServicePropagatesStoreFailures(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	backendErr := errors.New("disk full")
	owner := &domain.User{ID: 1, Username: "alice"}
	taskStore := &mocks.MockTaskStore{
		CreateFn: func(ctx context.Context, task *domain.Task) error { return backendErr },
		ListFn: func(ctx context.Context, ownerID int64, filter domain.TaskFilter) ([]*domain.Task, error) {
			return nil, backendErr
		},
		GetByIDFn: func(ctx context.Context, ownerID, id int64) (*domain.Task, error) {
			return &domain.Task{ID: id, UserID: ownerID, Status: domain.TaskStatusOpen}, nil
		},
		UpdateStatusFn: func(ctx context.Context, ownerID, id int64, status domain.TaskStatus) (*domain.Task, error) {
			return nil, backendErr
		},
		DeleteFn: func(ctx context.Context, ownerID, id int64) error { return backendErr },
	}
	svc, err := service.NewTaskService(taskStore, db, nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.CreateTask(ctx, "A", "", owner)
	assert.ErrorIs(t, err, backendErr)

	_, err = svc.ListTasks(ctx, domain.TaskFilter{}, owner)
	assert.ErrorIs(t, err, backendErr)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.UpdateTaskStatus(ctx, 7, domain.TaskStatusDone, owner)
	assert.ErrorIs(t, err, backendErr)
	assert.NoError(t, mock.ExpectationsWereMet())

	err = svc.DeleteTask(ctx, 7, owner)
	assert.ErrorIs(t, err, backendErr)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestNewTaskServiceValidation(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = service.NewTaskService(nil, db, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = service.NewTaskService(&mocks.MockTaskStore{}, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
