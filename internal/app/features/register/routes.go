// internal/app/features/register/routes.go
package register

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the registration screens under the base path (typically "/register").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRegisterPage)
	r.Post("/", h.HandleRegisterPost)
	return r
}
