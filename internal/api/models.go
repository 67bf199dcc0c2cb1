package api

import (
	"time"

	"github.com/phrazzld/task-tracker-api/internal/domain"
)

// SignUpRequest defines the payload for the sign-up endpoint.
type SignUpRequest struct {
	Username string `json:"username" validate:"required,max=20,alphanum"`
	Password string `json:"password" validate:"required,max=72"`
}

// SignInRequest defines the payload for the sign-in endpoint. Only presence is
// checked so a wrong password yields 401, not 400.
type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is returned after a successful sign-up.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// SignInResponse carries the access token and its expiry.
type SignInResponse struct {
	AccessToken string `json:"access_token"`

	// ExpiresAt is an RFC 3339 timestamp
	ExpiresAt string `json:"expires_at"`
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateTaskStatusRequest defines the payload for changing a task's status.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=OPEN IN_PROGRESS DONE"`
}

// ListTasksQuery holds the query parameters accepted by the task listing.
type ListTasksQuery struct {
	Status string `json:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS DONE"`
	Search string `json:"search" validate:"validutf8,max=255"`
}

// Filter converts the query into a domain.TaskFilter.
func (q ListTasksQuery) Filter() (domain.TaskFilter, error) {
	filter := domain.TaskFilter{Search: q.Search}
	if q.Status != "" {
		status, err := domain.ParseTaskStatus(q.Status)
		if err != nil {
			return domain.TaskFilter{}, err
		}
		filter.Status = &status
	}
	return filter, nil
}

// TaskResponse is the API shape of a task. The owner is never exposed.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func newTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func newTaskResponses(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, newTaskResponse(task))
	}
	return out
}
