package api

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/task-tracker-api/internal/api/shared"
	"github.com/phrazzld/task-tracker-api/internal/domain"
)

func TestSignUpRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		request SignUpRequest
		valid   bool
	}{
		{name: "valid", request: SignUpRequest{Username: "alice", Password: "Passw0rd"}, valid: true},
		{name: "short credentials", request: SignUpRequest{Username: "bob", Password: "pw1"}, valid: true},
		{name: "missing username", request: SignUpRequest{Password: "pw1"}},
		{name: "username too long", request: SignUpRequest{Username: strings.Repeat("a", 21), Password: "pw1"}},
		{name: "username not alphanumeric", request: SignUpRequest{Username: "al_ice", Password: "pw1"}},
		{name: "password too long", request: SignUpRequest{Username: "alice", Password: strings.Repeat("x", 73)}},
		{name: "missing password", request: SignUpRequest{Username: "alice"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := shared.ValidateRequest(tc.request)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSignInRequestOnlyRequiresPresence(t *testing.T) {
	assert.NoError(t, shared.ValidateRequest(SignInRequest{Username: "al", Password: "weak"}))
	assert.Error(t, shared.ValidateRequest(SignInRequest{Username: "alice"}))
	assert.Error(t, shared.ValidateRequest(SignInRequest{Password: "Passw0rd"}))
}

func TestTaskRequestValidation(t *testing.T) {
	assert.NoError(t, shared.ValidateRequest(CreateTaskRequest{Title: "A"}))
	assert.NoError(t, shared.ValidateRequest(CreateTaskRequest{Title: strings.Repeat("t", 255)}))
	assert.Error(t, shared.ValidateRequest(CreateTaskRequest{}))
	assert.Error(t, shared.ValidateRequest(CreateTaskRequest{Title: strings.Repeat("t", 256)}))
	assert.Error(t, shared.ValidateRequest(CreateTaskRequest{Title: "A", Description: strings.Repeat("d", 2001)}))

	for _, s := range []string{"OPEN", "IN_PROGRESS", "DONE"} {
		assert.NoError(t, shared.ValidateRequest(UpdateTaskStatusRequest{Status: s}))
	}
	assert.Error(t, shared.ValidateRequest(UpdateTaskStatusRequest{Status: "open"}))
	assert.Error(t, shared.ValidateRequest(UpdateTaskStatusRequest{}))
}

func TestListTasksQuery(t *testing.T) {
	assert.NoError(t, shared.ValidateRequest(ListTasksQuery{}))
	assert.Error(t, shared.ValidateRequest(ListTasksQuery{Status: "CLOSED"}))
	assert.Error(t, shared.ValidateRequest(ListTasksQuery{Search: strings.Repeat("s", 256)}))

	filter, err := ListTasksQuery{}.Filter()
	require.NoError(t, err)
	assert.Nil(t, filter.Status)
	assert.Empty(t, filter.Search)

	filter, err = ListTasksQuery{Status: "DONE", Search: "milk"}.Filter()
	require.NoError(t, err)
	require.NotNil(t, filter.Status)
	assert.Equal(t, domain.TaskStatusDone, *filter.Status)
	assert.Equal(t, "milk", filter.Search)

	_, err = ListTasksQuery{Status: "closed"}.Filter()
	assert.ErrorIs(t, err, domain.ErrInvalidTaskStatus)
}

func TestTaskResponseHidesOwner(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	task := &domain.Task{
		ID:        3,
		Title:     "Buy milk",
		Status:    domain.TaskStatusOpen,
		UserID:    99,
		CreatedAt: created,
		UpdatedAt: created,
	}

	data, err := json.Marshal(newTaskResponse(task))
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.ElementsMatch(t,
		[]string{"id", "title", "description", "status", "created_at", "updated_at"},
		keys(fields))
	assert.Equal(t, "2024-03-01T12:00:00Z", fields["created_at"])
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
