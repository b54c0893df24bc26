// Package session owns the process-wide authentication state.
//
// The persisted identity is exactly one string: the authenticated user's
// email, kept in a signed cookie under a fixed key. A request with a
// persisted identity is restored by re-fetching the current user from the
// remote API; the password is never needed again after login. All reads and
// writes of the identity go through this package — no other component touches
// the cookie.
package session

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/markjessn/mini-pms/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// identityKey is the fixed key the persisted email lives under.
const identityKey = "user_email"

// State is where the session lifecycle currently stands.
type State int

const (
	// StateUnknown is the initial state, before any credential lookup.
	StateUnknown State = iota
	// StateLoading means a credential lookup is in flight.
	StateLoading
	// StateAuthenticated means a current user was resolved.
	StateAuthenticated
	// StateAnonymous means there is no usable identity.
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// UserResolver re-fetches the current user for a persisted identity.
// Satisfied by the API client's Me operation.
type UserResolver interface {
	Me(ctx context.Context, email string) (*models.User, []string, error)
}

// SessionUser is the per-request view of the authenticated user, injected
// into the request context by LoadSessionUser.
type SessionUser struct {
	ID         string
	Name       string
	Email      string
	IsOrgAdmin bool
	OrgID      string
	OrgSlug    string
	OrgName    string
}

// Manager owns the cookie store and the restore lifecycle. It is the single
// writer of the persisted identity.
type Manager struct {
	store *sessions.CookieStore
	name  string
	api   UserResolver
	log   *zap.Logger

	// restores collapses concurrent refreshes of the same identity into a
	// single me lookup.
	restores singleflight.Group
}

// NewManager builds the session manager. The signing key must be present;
// short keys are tolerated with a warning, matching local-dev reality.
func NewManager(sessionKey, name, domain string, secure bool, api UserResolver, logger *zap.Logger) (*Manager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &Manager{
		store: store,
		name:  name,
		api:   api,
		log:   logger,
	}, nil
}

// Identity returns the persisted email for this request, "" when anonymous.
func (m *Manager) Identity(r *http.Request) string {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		// Undecodable cookie counts as no identity; the next login rewrites it.
		m.log.Warn("session cookie decode failed", zap.Error(err))
		return ""
	}
	email, _ := sess.Values[identityKey].(string)
	return email
}

// Login records the authenticated user's email as the persisted identity.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, user *models.User) error {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		m.log.Warn("session decode failed during login, using fresh session", zap.Error(err))
	}
	sess.Values[identityKey] = user.Email
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Logout clears the persisted identity synchronously — the deletion cookie is
// written before the caller issues any redirect.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		m.log.Warn("session decode failed during logout", zap.Error(err))
	}
	delete(sess.Values, identityKey)

	if opts := m.store.Options; opts != nil {
		sess.Options.Domain = opts.Domain
		sess.Options.Path = opts.Path
		sess.Options.Secure = opts.Secure
		sess.Options.HttpOnly = opts.HttpOnly
		sess.Options.SameSite = opts.SameSite
	}
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		m.log.Error("logout: save session", zap.Error(err))
	}
}

// Restore resolves a persisted identity to the current user. Concurrent
// restores of the same identity share one lookup. A nil user with a nil
// error means the identity is stale (the account is gone); a non-nil error
// means the lookup failed. Either way the caller clears the identity and
// resolves the request anonymous.
func (m *Manager) Restore(ctx context.Context, email string) (*models.User, error) {
	v, err, _ := m.restores.Do(email, func() (any, error) {
		user, _, err := m.api.Me(ctx, email)
		if err != nil {
			return nil, err
		}
		return user, nil
	})
	if err != nil {
		return nil, err
	}
	user, _ := v.(*models.User)
	return user, nil
}

// Snapshot resolves the session state for a request end to end: unknown →
// loading → authenticated|anonymous. Used by LoadSessionUser and directly
// testable against the state transition table.
func (m *Manager) Snapshot(ctx context.Context, r *http.Request) (State, *models.User) {
	email := m.Identity(r)
	if email == "" {
		return StateAnonymous, nil
	}

	user, err := m.Restore(ctx, email)
	if err != nil || user == nil {
		return StateAnonymous, nil
	}
	return StateAuthenticated, user
}

func sessionUserFrom(u *models.User) *SessionUser {
	su := &SessionUser{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		IsOrgAdmin: u.IsOrgAdmin,
	}
	if u.Organization != nil {
		su.OrgID = u.Organization.ID
		su.OrgSlug = u.Organization.Slug
		su.OrgName = u.Organization.Name
	}
	return su
}
