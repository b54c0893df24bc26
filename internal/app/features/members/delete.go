// internal/app/features/members/delete.go
package members

import (
	"context"
	"net/http"

	"github.com/markjessn/mini-pms/internal/app/system/session"
	"github.com/markjessn/mini-pms/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete removes a member from the organization. Admins cannot remove
// themselves; the roster must keep at least its acting admin.
// POST /{orgSlug}/members/{memberID}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")
	memberID := chi.URLParam(r, "memberID")
	listURL := "/" + slug + "/members"

	if user := session.CurrentUser(r); user != nil && user.ID == memberID {
		http.Redirect(w, r, listURL, http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	status, err := h.API.DeleteOrgMember(ctx, memberID)
	if status.Failed(err) {
		h.ErrLog.LogServerError(w, r, "delete member failed", err, "The member could not be removed. Please try again.", listURL)
		return
	}

	h.Log.Info("member removed", zap.String("org", slug), zap.String("member", memberID))
	http.Redirect(w, r, listURL, http.StatusSeeOther)
}
