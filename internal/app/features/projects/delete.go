// internal/app/features/projects/delete.go
package projects

import (
	"context"
	"net/http"

	"github.com/markjessn/mini-pms/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete removes a project. The server cascades to its tasks and
// comments, so a single mutation is the whole story.
// POST /{orgSlug}/projects/{projectID}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")
	projectID := chi.URLParam(r, "projectID")
	listURL := "/" + slug + "/projects"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	status, err := h.API.DeleteProject(ctx, projectID)
	if status.Failed(err) {
		h.ErrLog.LogServerError(w, r, "delete project failed", err, "The project could not be deleted. Please try again.", listURL)
		return
	}

	h.Log.Info("project deleted", zap.String("org", slug), zap.String("project", projectID))
	http.Redirect(w, r, listURL, http.StatusSeeOther)
}
