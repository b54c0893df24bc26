// internal/app/features/projects/list.go
package projects

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/markjessn/mini-pms/internal/app/features/errors"
	"github.com/markjessn/mini-pms/internal/app/api/graphql"
	"github.com/markjessn/mini-pms/internal/app/system/timeouts"
	"github.com/markjessn/mini-pms/internal/app/system/viewdata"
	"github.com/markjessn/mini-pms/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// ServeList renders the filterable project list.
// GET /{orgSlug}/projects?status=&q=
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")

	filters := models.ProjectFilters{
		Status: strings.TrimSpace(query.Get(r, "status")),
		Search: strings.TrimSpace(query.Get(r, "q")),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org, orgErrs, err := h.API.Organization(ctx, slug)
	if err == nil && org == nil {
		uierrors.RenderNotFound(w, r, "organization", "/")
		return
	}

	var all []string
	all = append(all, graphql.Messages(orgErrs, err)...)

	projects, projErrs, err := h.API.Projects(ctx, slug, filters)
	all = append(all, graphql.Messages(projErrs, err)...)

	data := listData{
		BaseVM:       viewdata.NewBaseVM(r, "Projects", "/"+slug),
		Projects:     projects,
		FilterStatus: filters.Status,
		Search:       filters.Search,
		Statuses:     models.ProjectStatuses,
	}
	if org != nil {
		data.Org = *org
	}
	data.Errors = all

	templates.Render(w, r, "projects_list", data)
}
