// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"
	"github.com/markjessn/mini-pms/internal/app/system/session"
)

// Routes mounts the dashboard under /{orgSlug}. Sign-in and org-access
// guards are applied by the bootstrap route tree; the settings screens add
// the admin gate here.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeDashboard)

	r.Group(func(pr chi.Router) {
		pr.Use(session.RequireOrgAdmin)
		pr.Get("/settings", h.ServeSettings)
		pr.Post("/settings", h.HandleSettingsPost)
	})

	return r
}
