// internal/app/features/members/handler.go
package members

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/markjessn/mini-pms/internal/app/features/errors"
	"github.com/markjessn/mini-pms/internal/app/api/graphql"
	"github.com/markjessn/mini-pms/internal/app/system/timeouts"
	"github.com/markjessn/mini-pms/internal/app/system/viewdata"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the member roster screen. Every route here sits behind the
// org-admin gate; non-admins are redirected before these handlers run.
type Handler struct {
	API    *graphql.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a members handler.
func NewHandler(api *graphql.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: api, ErrLog: errLog, Log: logger}
}

// ServeList renders the roster with the invite form.
// GET /{orgSlug}/members
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "orgSlug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	data, ok := h.loadRoster(ctx, w, r, slug)
	if !ok {
		return
	}
	templates.Render(w, r, "members_list", data)
}

// loadRoster fetches the organization and its members, this screen's owned
// collection. ok is false when the response has already been written.
func (h *Handler) loadRoster(ctx context.Context, w http.ResponseWriter, r *http.Request, slug string) (listData, bool) {
	org, orgErrs, err := h.API.Organization(ctx, slug)
	if err == nil && org == nil {
		uierrors.RenderNotFound(w, r, "organization", "/")
		return listData{}, false
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Members", "/"+slug),
	}
	data.Errors = graphql.Messages(orgErrs, err)

	if org != nil {
		data.Org = *org
		members, memberErrs, err := h.API.OrgMembers(ctx, org.ID)
		data.Members = members
		data.Errors = append(data.Errors, graphql.Messages(memberErrs, err)...)
	}
	return data, true
}
