// internal/app/features/register/handler.go
package register

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
	"github.com/markjessn/mini-pms/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for registration: a new
// organization and its first admin user are created together.
type Handler struct {
	API    *graphql.Client
	SM     *session.Manager
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a register handler.
func NewHandler(api *graphql.Client, sm *session.Manager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: api, SM: sm, ErrLog: errLog, Log: logger}
}

type registerData struct {
	viewdata.BaseVM
	Form        inputval.RegisterForm
	FieldErrors map[string]string
}

// ServeRegisterPage renders the combined organization + admin signup form.
// GET /register
func (h *Handler) ServeRegisterPage(w http.ResponseWriter, r *http.Request) {
	if user := session.CurrentUser(r); user != nil {
		http.Redirect(w, r, "/"+user.OrgSlug, http.StatusSeeOther)
		return
	}

	data := registerData{BaseVM: viewdata.NewBaseVM(r, "Create an organization", "/")}
	templates.Render(w, r, "register", data)
}

// HandleRegisterPost processes the signup form. On success the new admin is
// signed in and lands on their organization's dashboard.
// POST /register
func (h *Handler) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse register form failed", err, "Invalid form submission.", "/register")
		return
	}

	form := inputval.RegisterForm{
		Name:            strings.TrimSpace(r.FormValue("name")),
		Email:           strings.TrimSpace(r.FormValue("email")),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmPassword"),
		OrgName:         strings.TrimSpace(r.FormValue("organizationName")),
		OrgSlug:         strings.TrimSpace(r.FormValue("organizationSlug")),
	}

	renderForm := func(fieldErrors map[string]string, topErrors []string) {
		data := registerData{
			BaseVM:      viewdata.NewBaseVM(r, "Create an organization", "/"),
			Form:        form,
			FieldErrors: fieldErrors,
		}
		data.Errors = topErrors
		templates.Render(w, r, "register", data)
	}

	if result := form.Validate(); !result.IsValid {
		renderForm(result.Errors, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	auth, err := h.API.Register(ctx, graphql.RegisterInput{
		Name:             form.Name,
		Email:            form.Email,
		Password:         form.Password,
		OrganizationName: form.OrgName,
		OrganizationSlug: form.OrgSlug,
	})
	if auth.Failed(err) || auth.User == nil || auth.Organization == nil {
		h.Log.Info("registration rejected",
			zap.String("email", form.Email),
			zap.String("slug", form.OrgSlug))
		renderForm(nil, auth.Display(err))
		return
	}

	// The register payload may omit the nested org on the user; graft it so
	// the session has a slug to land on.
	if auth.User.Organization == nil {
		auth.User.Organization = auth.Organization
	}

	if err := h.SM.Login(w, r, auth.User); err != nil {
		h.ErrLog.LogServerError(w, r, "save session failed", err, "Your organization was created but sign-in failed. Please sign in.", "/login")
		return
	}

	h.Log.Info("organization registered",
		zap.String("slug", auth.Organization.Slug),
		zap.String("admin", auth.User.Email))
	http.Redirect(w, r, "/"+auth.Organization.Slug, http.StatusSeeOther)
}
