package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/task-tracker-api/internal/api/shared"
)

// RegisterRoutes mounts the /api routes on r. authenticate guards every
// route except sign-up and sign-in.
func RegisterRoutes(
	r chi.Router,
	authHandler *AuthHandler,
	taskHandler *TaskHandler,
	authenticate func(http.Handler) http.Handler,
) {
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", authHandler.SignUp)
		r.Post("/auth/signin", authHandler.SignIn)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Delete("/auth/account", authHandler.DeleteAccount)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.ListTasks)
				r.Post("/", taskHandler.CreateTask)
				r.Get("/{id}", taskHandler.GetTask)
				r.Delete("/{id}", taskHandler.DeleteTask)
				r.Patch("/{id}/status", taskHandler.UpdateTaskStatus)
			})
		})
	})
}
