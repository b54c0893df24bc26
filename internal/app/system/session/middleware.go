package session

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

type contextKey string

const userContextKey contextKey = "session_user"

// CurrentUser returns the session user injected by LoadSessionUser, or nil
// when the request is anonymous.
func CurrentUser(r *http.Request) *SessionUser {
	u, _ := r.Context().Value(userContextKey).(*SessionUser)
	return u
}

// WithUser returns a request whose context carries the given session user.
// Exposed for handler tests.
func WithUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userContextKey, u))
}

/*──────────────────────────── middleware ────────────────────────────*/

// LoadSessionUser restores the persisted identity, if any, and injects the
// resolved user into the request context. Any failed restore, whether the
// account is gone or the lookup itself failed, clears the identity and
// continues anonymous; signing in again is the only way back.
func (m *Manager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := m.Identity(r)
		if email == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.Restore(r.Context(), email)
		if err != nil || user == nil {
			m.Logout(w, r)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, WithUser(r, sessionUserFrom(user)))
	})
}

// RequireSignedIn rejects anonymous requests. Browser navigations are sent
// to the login screen with a return target; HTMX requests get a client-side
// redirect instead of a swapped fragment.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CurrentUser(r) != nil {
			next.ServeHTTP(w, r)
			return
		}

		target := "/login?return=" + url.QueryEscape(r.URL.RequestURI())
		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Redirect", target)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	})
}

// RequireOrgAccess pins a signed-in user to their own organization: a URL
// naming a foreign org slug redirects to the same-shaped path under the
// user's own slug rather than erroring.
func RequireOrgAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r)
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		slug := chi.URLParam(r, "orgSlug")
		if slug != "" && slug != user.OrgSlug {
			http.Redirect(w, r, "/"+user.OrgSlug, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireOrgAdmin allows only org admins through; members are sent back to
// their dashboard.
func RequireOrgAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r)
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if !user.IsOrgAdmin {
			http.Redirect(w, r, "/"+user.OrgSlug, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
