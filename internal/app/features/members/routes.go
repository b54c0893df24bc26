// internal/app/features/members/routes.go
package members

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the member roster under /{orgSlug}/members. The admin gate
// is applied by the caller, which wraps this whole subtree.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleInvite)
	r.Post("/{memberID}/delete", h.HandleDelete)

	return r
}
