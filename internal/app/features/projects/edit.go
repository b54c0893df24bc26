// internal/app/features/projects/edit.go
package projects

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/markjessn/mini-pms/internal/app/features/errors"
	"github.com/markjessn/mini-pms/internal/app/api/graphql"
	"github.com/markjessn/mini-pms/internal/app/system/inputval"
	"github.com/markjessn/mini-pms/internal/app/system/timeouts"
	"github.com/markjessn/mini-pms/internal/app/system/viewdata"
	"github.com/markjessn/mini-pms/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// ServeEdit renders the edit form prefilled with the current project.
// GET /{orgSlug}/projects/{projectID}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")
	projectID := chi.URLParam(r, "projectID")
	listURL := "/" + slug + "/projects"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	project, serverErrs, err := h.API.Project(ctx, projectID)
	if err == nil && project == nil {
		uierrors.RenderNotFound(w, r, "project", listURL)
		return
	}

	data := formData{
		BaseVM:    viewdata.NewBaseVM(r, "Edit project", listURL),
		ProjectID: projectID,
		Statuses:  models.ProjectStatuses,
	}
	if project != nil {
		data.Name = project.Name
		data.Description = project.Description
		data.Status = project.Status
		data.DueDate = project.DueDate
	}
	data.Errors = graphql.Messages(serverErrs, err)

	templates.Render(w, r, "project_form", data)
}

// HandleEdit processes the edit form. The update carries the complete field
// set; on success the redirect back to the list picks up the fresh data.
// POST /{orgSlug}/projects/{projectID}/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")
	projectID := chi.URLParam(r, "projectID")
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
			BaseVM:      viewdata.NewBaseVM(r, "Edit project", listURL),
			ProjectID:   projectID,
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

	_, mstatus, err := h.API.UpdateProject(ctx, projectID, models.ProjectInput{
		Name:        name,
		Description: description,
		Status:      status,
		DueDate:     dueDate,
	})
	if mstatus.Failed(err) {
		renderForm(nil, mstatus.Display(err))
		return
	}

	http.Redirect(w, r, listURL, http.StatusSeeOther)
}
