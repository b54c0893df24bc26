// internal/app/features/dashboard/settings.go
package dashboard

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

type settingsData struct {
	viewdata.BaseVM
	Org         models.Organization
	Form        inputval.OrganizationForm
	FieldErrors map[string]string
	Saved       bool
}

// ServeSettings renders the organization settings form, prefilled from the
// current org record. The slug is shown read-only: it is immutable and is
// the routing key for everything beneath it.
// GET /{orgSlug}/settings  (admin only)
func (h *Handler) ServeSettings(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	org, serverErrs, err := h.API.Organization(ctx, slug)
	if err == nil && org == nil {
		uierrors.RenderNotFound(w, r, "organization", "/")
		return
	}

	data := settingsData{
		BaseVM: viewdata.NewBaseVM(r, "Organization settings", "/"+slug),
		Saved:  r.URL.Query().Get("saved") == "1",
	}
	if org != nil {
		data.Org = *org
		data.Form = inputval.OrganizationForm{
			Name:         org.Name,
			Slug:         org.Slug,
			ContactEmail: org.ContactEmail,
		}
	}
	data.Errors = graphql.Messages(serverErrs, err)

	templates.Render(w, r, "org_settings", data)
}

// HandleSettingsPost updates the organization record. On success the browser
// is sent back to the settings screen, which renders the fresh record.
// POST /{orgSlug}/settings  (admin only)
func (h *Handler) HandleSettingsPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")
	back := "/" + slug + "/settings"

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse settings form failed", err, "Invalid form submission.", back)
		return
	}

	form := inputval.OrganizationForm{
		Name:         strings.TrimSpace(r.FormValue("name")),
		Slug:         slug, // immutable; never taken from the form
		ContactEmail: strings.TrimSpace(r.FormValue("contactEmail")),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	org, orgErrs, err := h.API.Organization(ctx, slug)
	if err != nil || org == nil {
		if org == nil && err == nil {
			uierrors.RenderNotFound(w, r, "organization", "/")
			return
		}
		h.renderSettings(w, r, slug, form, nil, graphql.Messages(orgErrs, err))
		return
	}

	if result := form.Validate(); !result.IsValid {
		h.renderSettings(w, r, slug, form, result.Errors, nil)
		return
	}

	_, status, err := h.API.UpdateOrganization(ctx, org.ID, form.Name, form.Slug, form.ContactEmail)
	if status.Failed(err) {
		h.renderSettings(w, r, slug, form, nil, status.Display(err))
		return
	}

	http.Redirect(w, r, back+"?saved=1", http.StatusSeeOther)
}

func (h *Handler) renderSettings(w http.ResponseWriter, r *http.Request, slug string, form inputval.OrganizationForm, fieldErrors map[string]string, topErrors []string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	data := settingsData{
		BaseVM:      viewdata.NewBaseVM(r, "Organization settings", "/"+slug),
		Form:        form,
		FieldErrors: fieldErrors,
	}
	if org, _, err := h.API.Organization(ctx, slug); err == nil && org != nil {
		data.Org = *org
	}
	data.Errors = topErrors

	templates.Render(w, r, "org_settings", data)
}
