// internal/app/features/projectdetail/handler.go
package projectdetail

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
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the project detail screen:
// the task board, the task modal with comments, and the live-update stream.
type Handler struct {
	API    *graphql.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a project-detail handler.
func NewHandler(api *graphql.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: api, ErrLog: errLog, Log: logger}
}

// ServeDetail renders the project page with its task board. The screen owns
// {organization, project, tasks(filters)} and fetches all three per render.
// GET /{orgSlug}/projects/{projectID}
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")
	projectID := chi.URLParam(r, "projectID")

	filters := models.TaskFilters{
		Status:        strings.TrimSpace(query.Get(r, "status")),
		Search:        strings.TrimSpace(query.Get(r, "q")),
		AssigneeEmail: strings.TrimSpace(query.Get(r, "assignee")),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var all []string

	org, orgErrs, err := h.API.Organization(ctx, slug)
	if err == nil && org == nil {
		uierrors.RenderNotFound(w, r, "organization", "/")
		return
	}
	all = append(all, graphql.Messages(orgErrs, err)...)

	project, projErrs, err := h.API.Project(ctx, projectID)
	if err == nil && project == nil {
		uierrors.RenderNotFound(w, r, "project", "/"+slug+"/projects")
		return
	}
	all = append(all, graphql.Messages(projErrs, err)...)

	tasks, taskErrs, err := h.API.Tasks(ctx, projectID, filters)
	all = append(all, graphql.Messages(taskErrs, err)...)

	data := detailData{
		BaseVM:       viewdata.NewBaseVM(r, "Project", "/"+slug+"/projects"),
		FilterStatus: filters.Status,
		Search:       filters.Search,
		Assignee:     filters.AssigneeEmail,
		TaskStatuses: models.TaskStatuses,
	}
	if org != nil {
		data.Org = *org
	}
	if project != nil {
		data.Project = *project
		data.Title = project.Name
	}
	data.Board = buildBoard(slug, projectID, tasks)
	data.Errors = all

	templates.Render(w, r, "project_detail", data)
}

// refreshBoard re-fetches the board's owned collections after a successful
// task mutation: the task list and the project, whose derived counts are
// server-owned and never recomputed locally.
func (h *Handler) refreshBoard(ctx context.Context, slug, projectID string) (boardRefresh, []string) {
	var all []string

	project, projErrs, err := h.API.Project(ctx, projectID)
	all = append(all, graphql.Messages(projErrs, err)...)

	tasks, taskErrs, err := h.API.Tasks(ctx, projectID, models.TaskFilters{})
	all = append(all, graphql.Messages(taskErrs, err)...)

	out := boardRefresh{Board: buildBoard(slug, projectID, tasks)}
	if project != nil {
		out.Project = *project
	}
	out.Errors = all
	return out, all
}

// respondBoard finishes a successful task mutation: HTMX callers get the
// refreshed board fragment, plain form posts get a redirect back to the
// detail screen (whose GET re-fetches everything anyway).
func (h *Handler) respondBoard(w http.ResponseWriter, r *http.Request, slug, projectID string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	refresh, errs := h.refreshBoard(ctx, slug, projectID)
	if len(errs) > 0 {
		h.Log.Warn("board refetch reported errors", zap.Strings("errors", errs))
	}

	if r.Header.Get("HX-Request") == "true" {
		templates.Render(w, r, "board_fragment", refresh)
		return
	}
	http.Redirect(w, r, "/"+slug+"/projects/"+projectID, http.StatusSeeOther)
}
