// internal/app/features/members/invite.go
package members

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/markjessn/mini-pms/internal/app/system/inputval"
	"github.com/markjessn/mini-pms/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleInvite creates a member in the organization and sends the browser
// back to the roster.
// POST /{orgSlug}/members
func (h *Handler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")
	listURL := "/" + slug + "/members"

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse invite form failed", err, "Invalid form submission.", listURL)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// renderWith re-renders the roster page with the invite form's values
	// echoed back; the password is never echoed.
	renderWith := func(fieldErrors map[string]string, topErrors []string) {
		data, ok := h.loadRoster(ctx, w, r, slug)
		if !ok {
			return
		}
		data.InviteName = name
		data.InviteEmail = email
		data.FieldErrors = fieldErrors
		data.Errors = append(data.Errors, topErrors...)
		templates.Render(w, r, "members_list", data)
	}

	form := inputval.MemberForm{Name: name, Email: email, Password: password}
	if result := form.Validate(); !result.IsValid {
		renderWith(result.Errors, nil)
		return
	}

	org, _, err := h.API.Organization(ctx, slug)
	if err != nil || org == nil {
		h.ErrLog.LogServerError(w, r, "resolve organization failed", err, "Could not reach the server. Please try again.", listURL)
		return
	}

	_, status, err := h.API.CreateOrgMember(ctx, org.ID, name, email, password)
	if status.Failed(err) {
		renderWith(nil, status.Display(err))
		return
	}

	h.Log.Info("member created", zap.String("org", slug), zap.String("email", email))
	http.Redirect(w, r, listURL, http.StatusSeeOther)
}
