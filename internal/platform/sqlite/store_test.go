package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/phrazzld/task-tracker-api/internal/domain"
	"github.com/phrazzld/task-tracker-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db, "up"))
	return db
}

func mustCreateUser(t *testing.T, users *UserStore, name string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(name, "hash-"+name, "salt-"+name)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func mustCreateTask(t *testing.T, tasks *TaskStore, owner *domain.User, title, desc string) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(title, desc, owner.ID)
	require.NoError(t, err)
	require.NoError(t, tasks.Create(context.Background(), task))
	return task
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(openTestDB(t), nil)

	alice := mustCreateUser(t, users, "alice")
	bob := mustCreateUser(t, users, "bob")
	assert.NotZero(t, alice.ID)
	assert.NotEqual(t, alice.ID, bob.ID)

	t.Run("get by username", func(t *testing.T) {
		got, err := users.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.ID)
		assert.Equal(t, "hash-alice", got.PasswordHash)
		assert.Equal(t, "salt-alice", got.Salt)
		assert.True(t, alice.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("username is case-sensitive", func(t *testing.T) {
		_, err := users.GetByUsername(ctx, "ALICE")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("duplicate username", func(t *testing.T) {
		dup, err := domain.NewUser("alice", "x", "y")
		require.NoError(t, err)
		err = users.Create(ctx, dup)
		assert.ErrorIs(t, err, store.ErrUsernameExists)
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("invalid user", func(t *testing.T) {
		err := users.Create(ctx, &domain.User{Username: "carol"})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, users.Delete(ctx, bob.ID))
		_, err := users.GetByID(ctx, bob.ID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.ErrorIs(t, users.Delete(ctx, bob.ID), store.ErrUserNotFound)
	})
}

func TestTaskStoreList(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	users := NewUserStore(db, nil)
	tasks := NewTaskStore(db, nil)

	alice := mustCreateUser(t, users, "alice")
	bob := mustCreateUser(t, users, "bob")

	milk := mustCreateTask(t, tasks, alice, "Buy milk", "")
	report := mustCreateTask(t, tasks, alice, "Write report", "include milk budget")
	percent := mustCreateTask(t, tasks, alice, "Raise 10%", "")
	mustCreateTask(t, tasks, bob, "Buy milk", "")

	_, err := tasks.UpdateStatus(ctx, alice.ID, report.ID, domain.TaskStatusDone)
	require.NoError(t, err)

	done := domain.TaskStatusDone
	open := domain.TaskStatusOpen
	inProgress := domain.TaskStatusInProgress

	tests := []struct {
		name   string
		filter domain.TaskFilter
		want   []int64
	}{
		{name: "no filter", filter: domain.TaskFilter{}, want: []int64{milk.ID, report.ID, percent.ID}},
		{name: "status only", filter: domain.TaskFilter{Status: &open}, want: []int64{milk.ID, percent.ID}},
		{name: "status without matches", filter: domain.TaskFilter{Status: &inProgress}, want: []int64{}},
		{name: "search title or description", filter: domain.TaskFilter{Search: "milk"}, want: []int64{milk.ID, report.ID}},
		{name: "search and status", filter: domain.TaskFilter{Status: &done, Search: "milk"}, want: []int64{report.ID}},
		{name: "search is case-sensitive", filter: domain.TaskFilter{Search: "MILK"}, want: []int64{}},
		{name: "percent matches literally", filter: domain.TaskFilter{Search: "%"}, want: []int64{percent.ID}},
		{name: "underscore matches literally", filter: domain.TaskFilter{Search: "_"}, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tasks.List(ctx, alice.ID, tt.filter)
			require.NoError(t, err)
			ids := make([]int64, 0, len(got))
			for _, task := range got {
				assert.Equal(t, alice.ID, task.UserID)
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestTaskStoreOwnership(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	users := NewUserStore(db, nil)
	tasks := NewTaskStore(db, nil)

	alice := mustCreateUser(t, users, "alice")
	bob := mustCreateUser(t, users, "bob")
	task := mustCreateTask(t, tasks, alice, "Secret", "")

	_, err := tasks.GetByID(ctx, bob.ID, task.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	_, err = tasks.UpdateStatus(ctx, bob.ID, task.ID, domain.TaskStatusDone)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	assert.ErrorIs(t, tasks.Delete(ctx, bob.ID, task.ID), store.ErrTaskNotFound)

	got, err := tasks.GetByID(ctx, alice.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusOpen, got.Status, "foreign update must not apply")

	updated, err := tasks.UpdateStatus(ctx, alice.ID, task.ID, domain.TaskStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusInProgress, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(got.UpdatedAt))

	require.NoError(t, tasks.Delete(ctx, alice.ID, task.ID))
	_, err = tasks.GetByID(ctx, alice.ID, task.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskStoreRejectsInvalidStatus(t *testing.T) {
	db := openTestDB(t)
	tasks := NewTaskStore(db, nil)

	_, err := tasks.UpdateStatus(context.Background(), 1, 1, domain.TaskStatus("CLOSED"))
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestDeletingUserRemovesTasks(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	users := NewUserStore(db, nil)
	tasks := NewTaskStore(db, nil)

	alice := mustCreateUser(t, users, "alice")
	mustCreateTask(t, tasks, alice, "One", "")
	require.NoError(t, users.Delete(ctx, alice.ID))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&count))
	assert.Zero(t, count)
}

func TestTaskForUnknownOwnerIsMissingReference(t *testing.T) {
	db := openTestDB(t)
	tasks := NewTaskStore(db, nil)

	task, err := domain.NewTask("Orphan", "", 999)
	require.NoError(t, err)
	err = tasks.Create(context.Background(), task)
	assert.ErrorIs(t, err, store.ErrMissingReference)
	assert.NotErrorIs(t, err, store.ErrInvalidEntity)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	users := NewUserStore(db, nil)

	rollback := errors.New("rollback")
	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		user, err := domain.NewUser("ghost", "h", "s")
		require.NoError(t, err)
		require.NoError(t, users.WithTx(tx).Create(ctx, user))
		return rollback
	})
	assert.ErrorIs(t, err, rollback)

	_, err = users.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestConcurrentReadThenWriteTransactions(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	users := NewUserStore(db, nil)
	tasks := NewTaskStore(db, nil)
	owner := mustCreateUser(t, users, "alice")
	task := mustCreateTask(t, tasks, owner, "A", "")

	const workers = 25
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
				txTasks := tasks.WithTx(tx)
				if _, err := txTasks.GetByID(ctx, owner.ID, task.ID); err != nil {
					return err
				}
				_, err := txTasks.UpdateStatus(ctx, owner.ID, task.ID, domain.TaskStatusDone)
				return err
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestMapError(t *testing.T) {
	assert.Nil(t, mapError(nil))
	assert.ErrorIs(t, mapError(sql.ErrNoRows), store.ErrNotFound)
	plain := errors.New("boom")
	assert.Equal(t, plain, mapError(plain))
	assert.False(t, isUniqueViolation(plain))
}
