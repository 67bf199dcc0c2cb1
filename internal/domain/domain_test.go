package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("alice", "hash", "salt")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.ID != 0 {
		t.Errorf("Expected ID to be left for the store, got %d", user.ID)
	}
	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if _, err := NewUser("", "hash", "salt"); err != ErrEmptyUsername {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}
	if _, err := NewUser("alice", "", "salt"); err != ErrEmptyPasswordHash {
		t.Errorf("Expected error %v, got %v", ErrEmptyPasswordHash, err)
	}
	if _, err := NewUser("alice", "hash", ""); err != ErrEmptySalt {
		t.Errorf("Expected error %v, got %v", ErrEmptySalt, err)
	}
}

func TestNewTask(t *testing.T) {
	task, err := NewTask("A", "", 7)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Status != TaskStatusOpen {
		t.Errorf("Expected status %s, got %s", TaskStatusOpen, task.Status)
	}
	if task.UserID != 7 {
		t.Errorf("Expected owner 7, got %d", task.UserID)
	}
	if !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Error("Expected CreatedAt and UpdatedAt to match on creation")
	}

	if _, err := NewTask("", "desc", 7); err != ErrTaskTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleEmpty, err)
	}
	if _, err := NewTask(strings.Repeat("x", MaxTaskTitleLength+1), "", 7); err != ErrTaskTitleTooLong {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleTooLong, err)
	}
	if _, err := NewTask("A", "", 0); err != ErrTaskOwnerEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskOwnerEmpty, err)
	}
}

func TestParseTaskStatus(t *testing.T) {
	for _, s := range []string{"OPEN", "IN_PROGRESS", "DONE"} {
		status, err := ParseTaskStatus(s)
		if err != nil {
			t.Errorf("ParseTaskStatus(%q) returned error %v", s, err)
		}
		if string(status) != s {
			t.Errorf("ParseTaskStatus(%q) = %q", s, status)
		}
	}

	for _, s := range []string{"", "open", "CLOSED", "DONE "} {
		_, err := ParseTaskStatus(s)
		if !errors.Is(err, ErrInvalidTaskStatus) {
			t.Errorf("ParseTaskStatus(%q) error = %v, want ErrInvalidTaskStatus", s, err)
		}
		if !errors.Is(err, ErrValidation) {
			t.Errorf("ParseTaskStatus(%q) error should also be a validation error", s)
		}
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("id", "has invalid format", ErrInvalidID)

	if err.Error() != "id has invalid format" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrInvalidID) {
		t.Error("expected errors.Is to match the wrapped sentinel")
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("expected errors.Is to match ErrValidation")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "id" {
		t.Errorf("expected errors.As to expose the field, got %+v", ve)
	}
}
