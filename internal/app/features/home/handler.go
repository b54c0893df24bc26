// internal/app/features/home/handler.go
package home

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/markjessn/mini-pms/internal/app/api/graphql"
	"github.com/markjessn/mini-pms/internal/app/system/session"
	"github.com/markjessn/mini-pms/internal/app/system/timeouts"
	"github.com/markjessn/mini-pms/internal/app/system/viewdata"
	"github.com/markjessn/mini-pms/internal/domain/models"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the landing page.
type Handler struct {
	API *graphql.Client
	Log *zap.Logger
}

// NewHandler constructs a home handler bound to the API client and logger.
func NewHandler(api *graphql.Client, logger *zap.Logger) *Handler {
	return &Handler{API: api, Log: logger}
}

type homeData struct {
	viewdata.BaseVM
	Organizations []models.Organization
}

// ServeHome renders the public landing page: the organization directory with
// sign-in and register entry points. A signed-in user goes straight to their
// org dashboard.
func (h *Handler) ServeHome(w http.ResponseWriter, r *http.Request) {
	if user := session.CurrentUser(r); user != nil {
		http.Redirect(w, r, "/"+user.OrgSlug, http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	orgs, serverErrs, err := h.API.Organizations(ctx)

	data := homeData{
		BaseVM:        viewdata.NewBaseVM(r, "Welcome", "/"),
		Organizations: orgs,
	}
	// Partial data renders alongside whatever errors came back.
	data.Errors = graphql.Messages(serverErrs, err)

	templates.Render(w, r, "home", data)
}
