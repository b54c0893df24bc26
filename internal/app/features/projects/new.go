// internal/app/features/projects/new.go
package projects

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/markjessn/mini-pms/internal/app/system/inputval"
	"github.com/markjessn/mini-pms/internal/app/system/timeouts"
	"github.com/markjessn/mini-pms/internal/app/system/viewdata"
	"github.com/markjessn/mini-pms/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeNew renders the "New project" form.
// GET /{orgSlug}/projects/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")

	data := formData{
		BaseVM:   viewdata.NewBaseVM(r, "New project", "/"+slug+"/projects"),
		Status:   models.ProjectActive,
		Statuses: models.ProjectStatuses,
	}
	templates.Render(w, r, "project_form", data)
}

// HandleCreate processes the new-project form. On success the browser is
// sent back to the list, whose GET picks up the new project.
// POST /{orgSlug}/projects
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")
	listURL := "/" + slug + "/projects"

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse project form failed", err, "Invalid form submission.", listURL)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	description := strings.TrimSpace(r.FormValue("description"))
	status := strings.TrimSpace(r.FormValue("status"))
	dueDate := strings.TrimSpace(r.FormValue("dueDate"))

	renderForm := func(fieldErrors map[string]string, topErrors []string) {
		data := formData{
			BaseVM:      viewdata.NewBaseVM(r, "New project", listURL),
			Name:        name,
			Description: description,
			Status:      status,
			DueDate:     dueDate,
			Statuses:    models.ProjectStatuses,
			FieldErrors: fieldErrors,
		}
		data.Errors = topErrors
		templates.Render(w, r, "project_form", data)
	}

	form := inputval.ProjectForm{Name: name, Status: status}
	if result := form.Validate(); !result.IsValid {
		renderForm(result.Errors, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	org, _, err := h.API.Organization(ctx, slug)
	if err != nil || org == nil {
		h.ErrLog.LogServerError(w, r, "resolve organization failed", err, "Could not reach the server. Please try again.", listURL)
		return
	}

	_, status2, err := h.API.CreateProject(ctx, models.ProjectInput{
		Name:           name,
		Description:    description,
		Status:         status,
		DueDate:        dueDate,
		OrganizationID: org.ID,
	})
	if status2.Failed(err) {
		renderForm(nil, status2.Display(err))
		return
	}

	h.Log.Info("project created", zap.String("org", slug), zap.String("name", name))
	http.Redirect(w, r, listURL, http.StatusSeeOther)
}
