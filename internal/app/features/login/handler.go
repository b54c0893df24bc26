// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/markjessn/mini-pms/internal/app/features/errors"
	"github.com/markjessn/mini-pms/internal/app/api/graphql"
	"github.com/markjessn/mini-pms/internal/app/system/inputval"
	"github.com/markjessn/mini-pms/internal/app/system/session"
	"github.com/markjessn/mini-pms/internal/app/system/timeouts"
	"github.com/markjessn/mini-pms/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for sign-in.
type Handler struct {
	API    *graphql.Client
	SM     *session.Manager
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a login handler.
func NewHandler(api *graphql.Client, sm *session.Manager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: api, SM: sm, ErrLog: errLog, Log: logger}
}

type loginData struct {
	viewdata.BaseVM
	Email       string
	Return      string
	FieldErrors map[string]string
}

// ServeLoginPage renders the sign-in form.
// GET /login
func (h *Handler) ServeLoginPage(w http.ResponseWriter, r *http.Request) {
	if user := session.CurrentUser(r); user != nil {
		http.Redirect(w, r, "/"+user.OrgSlug, http.StatusSeeOther)
		return
	}

	data := loginData{
		BaseVM: viewdata.NewBaseVM(r, "Sign in", "/"),
		Return: r.URL.Query().Get("return"),
	}
	templates.Render(w, r, "login", data)
}

// HandleLoginPost processes the sign-in form.
// POST /login
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse login form failed", err, "Invalid form submission.", "/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	ret := r.FormValue("return")

	renderForm := func(fieldErrors map[string]string, topErrors []string) {
		data := loginData{
			BaseVM:      viewdata.NewBaseVM(r, "Sign in", "/"),
			Email:       email,
			Return:      ret,
			FieldErrors: fieldErrors,
		}
		data.Errors = topErrors
		templates.Render(w, r, "login", data)
	}

	fieldErrors := map[string]string{}
	if msg := inputval.Required(email, "Email"); msg != "" {
		fieldErrors["email"] = msg
	} else if msg := inputval.Email(email, "Email"); msg != "" {
		fieldErrors["email"] = msg
	}
	if msg := inputval.Required(password, "Password"); msg != "" {
		fieldErrors["password"] = msg
	}
	if len(fieldErrors) > 0 {
		renderForm(fieldErrors, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	auth, err := h.API.Login(ctx, email, password)
	if auth.Failed(err) || auth.User == nil {
		h.Log.Info("login rejected", zap.String("email", email))
		msgs := auth.Display(err)
		if len(msgs) == 0 {
			msgs = []string{"Invalid email or password."}
		}
		renderForm(nil, msgs)
		return
	}

	if err := h.SM.Login(w, r, auth.User); err != nil {
		h.ErrLog.LogServerError(w, r, "save session failed", err, "Could not start your session. Please try again.", "/login")
		return
	}

	h.Log.Info("user signed in", zap.String("email", email))
	http.Redirect(w, r, urlutil.SafeReturn(ret, "", "/"+auth.User.OrgSlug()), http.StatusSeeOther)
}
