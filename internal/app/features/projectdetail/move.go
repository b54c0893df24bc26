// internal/app/features/projectdetail/move.go
package projectdetail

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	uierrors "github.com/markjessn/mini-pms/internal/app/features/errors"
	"github.com/markjessn/mini-pms/internal/app/system/board"
	"github.com/markjessn/mini-pms/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// dropReport is what the board script posts at the end of a drag: the
// release point and the column boxes it measured when the drag started.
type dropReport struct {
	X      float64
	Y      float64
	Layout board.Layout
}

func parseDropReport(r *http.Request) (dropReport, error) {
	if err := r.ParseForm(); err != nil {
		return dropReport{}, err
	}

	var rep dropReport
	var err error
	if rep.X, err = strconv.ParseFloat(r.FormValue("x"), 64); err != nil {
		return dropReport{}, err
	}
	if rep.Y, err = strconv.ParseFloat(r.FormValue("y"), 64); err != nil {
		return dropReport{}, err
	}
	if err := json.Unmarshal([]byte(r.FormValue("layout")), &rep.Layout); err != nil {
		return dropReport{}, err
	}
	return rep, nil
}

// HandleTaskMove resolves a drag-and-drop release. The gesture state machine
// decides where the card landed; a cancelled gesture mutates nothing. A drop
// issues one updateTask carrying the task's complete current field set with
// the new status, then re-fetches tasks and project.
// POST /{orgSlug}/projects/{projectID}/tasks/{taskID}/move
func (h *Handler) HandleTaskMove(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")
	projectID := chi.URLParam(r, "projectID")
	taskID := chi.URLParam(r, "taskID")
	detailURL := "/" + slug + "/projects/" + projectID

	rep, err := parseDropReport(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse drop report failed", err, "Invalid drag report.", detailURL)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// The task's current fields come from the server, not the browser: the
	// update contract is a full replace and the card may be stale.
	task, _, err := h.API.Task(ctx, taskID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "fetch task for move failed", err, "Could not reach the server. Please try again.", detailURL)
		return
	}
	if task == nil {
		uierrors.RenderNotFound(w, r, "task", detailURL)
		return
	}

	outcome, err := board.ResolveDrop(*task, rep.Layout, rep.X, rep.Y)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "resolve drop failed", err, "Invalid drag report.", detailURL)
		return
	}

	if !outcome.Dropped {
		// Same column or outside the board: no mutation, nothing to refresh.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	input := task.Input(projectID)
	input.Status = outcome.NewStatus

	_, status, err := h.API.UpdateTask(ctx, taskID, input)
	if status.Failed(err) {
		h.Log.Warn("task move rejected",
			zap.String("task", taskID),
			zap.Strings("errors", status.Display(err)))
		// The board re-renders from server truth; the card snaps back.
		h.respondBoard(w, r, slug, projectID)
		return
	}

	h.Log.Info("task moved",
		zap.String("task", taskID),
		zap.String("from", task.Status),
		zap.String("to", outcome.NewStatus))
	h.respondBoard(w, r, slug, projectID)
}
