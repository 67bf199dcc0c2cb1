package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/task-tracker-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Every read and write is scoped to an owner: a task that exists but belongs
// to someone else is reported exactly like a missing one, as ErrTaskNotFound.
type TaskStore interface {
	// Create saves a new task and sets its ID and timestamps.
	Create(ctx context.Context, task *domain.Task) error

	// List returns the owner's tasks matching filter, ordered by ID.
	// Search matches a case-sensitive substring of the title or the description.
	List(ctx context.Context, ownerID int64, filter domain.TaskFilter) ([]*domain.Task, error)

	// GetByID retrieves one of the owner's tasks.
	GetByID(ctx context.Context, ownerID, id int64) (*domain.Task, error)

	// UpdateStatus sets the status of one of the owner's tasks and returns the stored row.
	UpdateStatus(ctx context.Context, ownerID, id int64, status domain.TaskStatus) (*domain.Task, error)

	// Delete removes one of the owner's tasks.
	Delete(ctx context.Context, ownerID, id int64) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
