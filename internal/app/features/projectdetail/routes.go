// internal/app/features/projectdetail/routes.go
package projectdetail

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the project detail screen under
// /{orgSlug}/projects/{projectID}.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeDetail)
	r.Get("/events", h.ServeEvents)

	r.Route("/tasks", func(tr chi.Router) {
		tr.Post("/", h.HandleTaskCreate)
		tr.Get("/{taskID}", h.ServeTaskModal)
		tr.Post("/{taskID}/edit", h.HandleTaskEdit)
		tr.Post("/{taskID}/delete", h.HandleTaskDelete)
		tr.Post("/{taskID}/move", h.HandleTaskMove)
		tr.Post("/{taskID}/comments", h.HandleCommentAdd)
		tr.Post("/{taskID}/comments/{commentID}/delete", h.HandleCommentDelete)
	})

	return r
}
