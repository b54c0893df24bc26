// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/markjessn/mini-pms/internal/app/system/session"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
	SM  *session.Manager
}

func NewHandler(sm *session.Manager, logger *zap.Logger) *Handler {
	return &Handler{Log: logger, SM: sm}
}

// ServeLogout clears the session and sends the user home. The deletion
// cookie is written before the redirect, so the identity is gone even if the
// browser never follows it.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	h.SM.Logout(w, r)

	// HTMX handling: use HX-Redirect to force a client-side navigation to "/".
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
