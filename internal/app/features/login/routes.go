// internal/app/features/login/routes.go
package login

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the login screens under the base path (typically "/login").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLoginPage)
	r.Post("/", h.HandleLoginPost)
	return r
}
