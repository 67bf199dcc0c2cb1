package domain

import (
	"errors"
	"time"
	"unicode/utf8"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

// Known task statuses.
const (
	TaskStatusOpen       TaskStatus = "OPEN"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// MaxTaskTitleLength is the longest title accepted, in characters.
const MaxTaskTitleLength = 255

// Task validation errors
var (
	ErrTaskTitleEmpty   = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong = errors.New("task title is too long")
	ErrTaskOwnerEmpty   = errors.New("task owner cannot be empty")
)

// IsValid reports whether s is one of the known statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// ParseTaskStatus converts s to a TaskStatus, rejecting unknown values.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.IsValid() {
		return "", NewValidationError("status", "must be one of OPEN, IN_PROGRESS, DONE", ErrInvalidTaskStatus)
	}
	return status, nil
}

// Task is a unit of work owned by exactly one user. UserID never changes
// after creation and is not exposed in API responses.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	UserID      int64      `json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask builds an OPEN task owned by userID. The ID is assigned by the store.
func NewTask(title, description string, userID int64) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		Status:      TaskStatusOpen,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrTaskTitleEmpty
	}
	if utf8.RuneCountInString(t.Title) > MaxTaskTitleLength {
		return ErrTaskTitleTooLong
	}
	if t.UserID <= 0 {
		return ErrTaskOwnerEmpty
	}
	if !t.Status.IsValid() {
		return ErrInvalidTaskStatus
	}
	return nil
}

// TaskFilter narrows a task listing. Zero values mean "no restriction".
type TaskFilter struct {
	Status *TaskStatus
	Search string
}
