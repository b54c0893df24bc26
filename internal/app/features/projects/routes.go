// internal/app/features/projects/routes.go
package projects

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the project list and forms under /{orgSlug}/projects.
// The detail router (the task board feature) is mounted under
// /{projectID} so both features share one URL subtree.
func Routes(h *Handler, detail chi.Router) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Get("/new", h.ServeNew)

	r.Route("/{projectID}", func(ir chi.Router) {
		ir.Get("/edit", h.ServeEdit)
		ir.Post("/edit", h.HandleEdit)
		ir.Post("/delete", h.HandleDelete)
		ir.Mount("/", detail)
	})

	return r
}
