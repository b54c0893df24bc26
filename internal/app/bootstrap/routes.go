// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	dashboardfeature "github.com/markjessn/mini-pms/internal/app/features/dashboard"
	errorsfeature "github.com/markjessn/mini-pms/internal/app/features/errors"
	homefeature "github.com/markjessn/mini-pms/internal/app/features/home"
	loginfeature "github.com/markjessn/mini-pms/internal/app/features/login"
	logoutfeature "github.com/markjessn/mini-pms/internal/app/features/logout"
	membersfeature "github.com/markjessn/mini-pms/internal/app/features/members"
	projectdetailfeature "github.com/markjessn/mini-pms/internal/app/features/projectdetail"
	projectsfeature "github.com/markjessn/mini-pms/internal/app/features/projects"
	registerfeature "github.com/markjessn/mini-pms/internal/app/features/register"
	_ "github.com/markjessn/mini-pms/internal/app/features/shared/views"
	"github.com/markjessn/mini-pms/internal/app/system/session"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend setup, and Startup have
// completed. The route tree mirrors the URL model: public auth screens at
// the top, everything org-scoped under /{orgSlug} behind the sign-in and
// org-access guards.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := session.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, deps.API, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: resolves the persisted identity against the
	// remote API and puts the SessionUser into context.
	r.Use(sessionMgr.LoadSessionUser)

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages and authentication
	r.Mount("/login", loginfeature.Routes(loginfeature.NewHandler(deps.API, sessionMgr, errLog, logger)))
	r.Mount("/register", registerfeature.Routes(registerfeature.NewHandler(deps.API, sessionMgr, errLog, logger)))
	r.Mount("/logout", logoutfeature.Routes(logoutfeature.NewHandler(sessionMgr, logger)))

	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)
	r.NotFound(errorsHandler.NotFound)

	homeHandler := homefeature.NewHandler(deps.API, logger)
	r.Get("/", homeHandler.ServeHome)

	// Everything org-scoped. The slug in the URL must match the session
	// user's own organization; there is no cross-org browsing.
	r.Route("/{orgSlug}", func(or chi.Router) {
		or.Use(session.RequireSignedIn)
		or.Use(session.RequireOrgAccess)

		or.Mount("/", dashboardfeature.Routes(dashboardfeature.NewHandler(deps.API, errLog, logger)))

		detailRoutes := projectdetailfeature.Routes(projectdetailfeature.NewHandler(deps.API, errLog, logger))
		or.Mount("/projects", projectsfeature.Routes(projectsfeature.NewHandler(deps.API, errLog, logger), detailRoutes))

		or.Group(func(ar chi.Router) {
			ar.Use(session.RequireOrgAdmin)
			ar.Mount("/members", membersfeature.Routes(membersfeature.NewHandler(deps.API, errLog, logger)))
		})
	})

	return r, nil
}
