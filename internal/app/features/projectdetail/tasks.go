// internal/app/features/projectdetail/tasks.go
package projectdetail

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/markjessn/mini-pms/internal/app/features/errors"
	"github.com/markjessn/mini-pms/internal/app/api/graphql"
	"github.com/markjessn/mini-pms/internal/app/system/inputval"
	"github.com/markjessn/mini-pms/internal/app/system/timeouts"
	"github.com/markjessn/mini-pms/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// taskForm pulls the task fields out of a posted form. The returned Touched
// set marks only the fields the form actually carried: the quick-add form
// posts a subset of the full editor, and its errors should stay within it.
func taskForm(r *http.Request) (models.TaskInput, inputval.TaskForm, inputval.Touched) {
	input := models.TaskInput{
		Title:         strings.TrimSpace(r.FormValue("title")),
		Description:   strings.TrimSpace(r.FormValue("description")),
		Status:        strings.TrimSpace(r.FormValue("status")),
		AssigneeEmail: strings.TrimSpace(r.FormValue("assigneeEmail")),
		DueDate:       strings.TrimSpace(r.FormValue("dueDate")),
	}
	form := inputval.TaskForm{
		Title:         input.Title,
		Status:        input.Status,
		AssigneeEmail: input.AssigneeEmail,
	}

	touched := inputval.Touched{}
	for _, field := range []string{"title", "description", "status", "assigneeEmail", "dueDate"} {
		if _, ok := r.PostForm[field]; ok {
			touched.Mark(field)
		}
	}
	return input, form, touched
}

// renderTaskErrors re-renders the inline task form fragment with errors and
// the user's values untouched.
func (h *Handler) renderTaskErrors(w http.ResponseWriter, r *http.Request, slug, projectID, taskID string, input models.TaskInput, fieldErrors map[string]string, topErrors []string) {
	data := modalData{
		OrgSlug:   slug,
		ProjectID: projectID,
		Task: models.Task{
			ID:            taskID,
			Title:         input.Title,
			Description:   input.Description,
			Status:        input.Status,
			AssigneeEmail: input.AssigneeEmail,
			DueDate:       input.DueDate,
		},
		TaskStatuses: models.TaskStatuses,
		FieldErrors:  fieldErrors,
		Errors:       topErrors,
	}
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "task_form", data)
}

// HandleTaskCreate adds a task to the project, then re-fetches the task list
// and the project so the derived counts come back server-computed.
// POST /{orgSlug}/projects/{projectID}/tasks
func (h *Handler) HandleTaskCreate(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")
	projectID := chi.URLParam(r, "projectID")
	detailURL := "/" + slug + "/projects/" + projectID

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse task form failed", err, "Invalid form submission.", detailURL)
		return
	}

	input, form, touched := taskForm(r)
	input.ProjectID = projectID
	if input.Status == "" {
		input.Status = models.TaskTodo
		form.Status = input.Status
	}
	touched.Mark("title")

	if result := form.Validate(); !result.IsValid {
		h.renderTaskErrors(w, r, slug, projectID, "", input, touched.Visible(result), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	_, status, err := h.API.CreateTask(ctx, input)
	if status.Failed(err) {
		h.renderTaskErrors(w, r, slug, projectID, "", input, nil, status.Display(err))
		return
	}

	h.Log.Info("task created", zap.String("project", projectID), zap.String("title", input.Title))
	h.respondBoard(w, r, slug, projectID)
}

// ServeTaskModal renders the task modal fragment: the task with its
// comments, fetched fresh.
// GET /{orgSlug}/projects/{projectID}/tasks/{taskID}
func (h *Handler) ServeTaskModal(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")
	projectID := chi.URLParam(r, "projectID")
	taskID := chi.URLParam(r, "taskID")
	detailURL := "/" + slug + "/projects/" + projectID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	task, serverErrs, err := h.API.Task(ctx, taskID)
	if err == nil && task == nil {
		uierrors.RenderNotFound(w, r, "task", detailURL)
		return
	}

	data := modalData{OrgSlug: slug, ProjectID: projectID, TaskStatuses: models.TaskStatuses}
	if task != nil {
		data = buildModal(slug, projectID, *task)
	}
	data.Errors = append(data.Errors, graphql.Messages(serverErrs, err)...)

	templates.Render(w, r, "task_modal", data)
}

// HandleTaskEdit updates a task with the complete field set (the remote
// contract is full replace), then re-fetches tasks and project.
// POST /{orgSlug}/projects/{projectID}/tasks/{taskID}/edit
func (h *Handler) HandleTaskEdit(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")
	projectID := chi.URLParam(r, "projectID")
	taskID := chi.URLParam(r, "taskID")
	detailURL := "/" + slug + "/projects/" + projectID

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse task form failed", err, "Invalid form submission.", detailURL)
		return
	}

	input, form, touched := taskForm(r)
	input.ProjectID = projectID
	touched.MarkAll("title", "status", "assigneeEmail")

	if result := form.Validate(); !result.IsValid {
		h.renderTaskErrors(w, r, slug, projectID, taskID, input, touched.Visible(result), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	_, status, err := h.API.UpdateTask(ctx, taskID, input)
	if status.Failed(err) {
		h.renderTaskErrors(w, r, slug, projectID, taskID, input, nil, status.Display(err))
		return
	}

	h.respondBoard(w, r, slug, projectID)
}

// HandleTaskDelete removes a task, then re-fetches tasks and project.
// POST /{orgSlug}/projects/{projectID}/tasks/{taskID}/delete
func (h *Handler) HandleTaskDelete(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")
	projectID := chi.URLParam(r, "projectID")
	taskID := chi.URLParam(r, "taskID")
	detailURL := "/" + slug + "/projects/" + projectID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	status, err := h.API.DeleteTask(ctx, taskID)
	if status.Failed(err) {
		h.ErrLog.LogServerError(w, r, "delete task failed", err, "The task could not be deleted. Please try again.", detailURL)
		return
	}

	h.Log.Info("task deleted", zap.String("project", projectID), zap.String("task", taskID))
	h.respondBoard(w, r, slug, projectID)
}
