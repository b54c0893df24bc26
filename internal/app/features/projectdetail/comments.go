// internal/app/features/projectdetail/comments.go
package projectdetail

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/markjessn/mini-pms/internal/app/features/errors"
	"github.com/markjessn/mini-pms/internal/app/api/graphql"
	"github.com/markjessn/mini-pms/internal/app/system/inputval"
	"github.com/markjessn/mini-pms/internal/app/system/session"
	"github.com/markjessn/mini-pms/internal/app/system/timeouts"
	"github.com/markjessn/mini-pms/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// respondModal finishes a comment mutation: the modal owns the task
// (including its comments), so it is re-fetched and re-rendered whole.
func (h *Handler) respondModal(w http.ResponseWriter, r *http.Request, slug, projectID, taskID string, topErrors []string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	task, serverErrs, err := h.API.Task(ctx, taskID)
	if err == nil && task == nil {
		uierrors.RenderNotFound(w, r, "task", "/"+slug+"/projects/"+projectID)
		return
	}

	data := modalData{OrgSlug: slug, ProjectID: projectID, TaskStatuses: models.TaskStatuses}
	if task != nil {
		data = buildModal(slug, projectID, *task)
	}
	data.Errors = append(topErrors, graphql.Messages(serverErrs, err)...)

	templates.Render(w, r, "task_modal", data)
}

// HandleCommentAdd appends a comment to a task. The author is the session
// user; comments are immutable once written.
// POST /{orgSlug}/projects/{projectID}/tasks/{taskID}/comments
func (h *Handler) HandleCommentAdd(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")
	projectID := chi.URLParam(r, "projectID")
	taskID := chi.URLParam(r, "taskID")
	detailURL := "/" + slug + "/projects/" + projectID

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse comment form failed", err, "Invalid form submission.", detailURL)
		return
	}

	user := session.CurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	content := strings.TrimSpace(r.FormValue("content"))

	form := inputval.CommentForm{Content: content, AuthorEmail: user.Email}
	if result := form.Validate(); !result.IsValid {
		h.respondModal(w, r, slug, projectID, taskID, valuesOf(result.Errors))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	_, status, err := h.API.AddTaskComment(ctx, models.TaskCommentInput{
		Content:     content,
		AuthorEmail: user.Email,
		TaskID:      taskID,
	})
	if status.Failed(err) {
		h.respondModal(w, r, slug, projectID, taskID, status.Display(err))
		return
	}

	h.Log.Info("comment added", zap.String("task", taskID), zap.String("author", user.Email))
	h.respondModal(w, r, slug, projectID, taskID, nil)
}

// HandleCommentDelete removes a comment and re-renders the modal.
// POST /{orgSlug}/projects/{projectID}/tasks/{taskID}/comments/{commentID}/delete
func (h *Handler) HandleCommentDelete(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")
	projectID := chi.URLParam(r, "projectID")
	taskID := chi.URLParam(r, "taskID")
	commentID := chi.URLParam(r, "commentID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	status, err := h.API.DeleteTaskComment(ctx, commentID)
	if status.Failed(err) {
		h.respondModal(w, r, slug, projectID, taskID, status.Display(err))
		return
	}

	h.respondModal(w, r, slug, projectID, taskID, nil)
}

// valuesOf flattens a field-error map for the modal's top banner.
func valuesOf(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
