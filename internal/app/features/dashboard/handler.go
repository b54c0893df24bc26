// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/markjessn/mini-pms/internal/app/features/errors"
	"github.com/markjessn/mini-pms/internal/app/api/graphql"
	"github.com/markjessn/mini-pms/internal/app/system/timeouts"
	"github.com/markjessn/mini-pms/internal/app/system/viewdata"
	"github.com/markjessn/mini-pms/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the org dashboard.
type Handler struct {
	API    *graphql.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a dashboard handler.
func NewHandler(api *graphql.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: api, ErrLog: errLog, Log: logger}
}

type dashboardData struct {
	viewdata.BaseVM
	Org      models.Organization
	Stats    models.ProjectStatistics
	Projects []models.Project
}

// ServeDashboard renders the organization overview: aggregate statistics and
// the project list. All three collections belong to this screen and are
// fetched together on every render.
// GET /{orgSlug}
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org, orgErrs, err := h.API.Organization(ctx, slug)
	if err == nil && org == nil {
		uierrors.RenderNotFound(w, r, "organization", "/")
		return
	}

	var all []string
	all = append(all, graphql.Messages(orgErrs, err)...)

	data := dashboardData{BaseVM: viewdata.NewBaseVM(r, "Dashboard", "/")}
	if org != nil {
		data.Org = *org
	}

	stats, statErrs, err := h.API.ProjectStatistics(ctx, slug)
	all = append(all, graphql.Messages(statErrs, err)...)
	if stats != nil {
		data.Stats = *stats
	}

	projects, projErrs, err := h.API.Projects(ctx, slug, models.ProjectFilters{})
	all = append(all, graphql.Messages(projErrs, err)...)
	data.Projects = projects

	// Partial data plus surfaced errors, never fail-closed.
	data.Errors = all

	templates.Render(w, r, "dashboard", data)
}
