// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging,
// CORS). AppConfig is everything specific to this application: the remote
// API endpoints this client renders, and session cookie settings.
type AppConfig struct {
	// Remote API endpoints. The app keeps no data of its own; every screen
	// is rendered from what these return.
	APIHTTPURL string // GraphQL queries and mutations (e.g. https://api.example.com/graphql)
	APIWSURL   string // GraphQL subscriptions over websocket (e.g. wss://api.example.com/graphql)

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: minipms-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Per-call API timeout tuning. Zero values keep the defaults.
	APITimeoutShort  time.Duration // single-entity fetches
	APITimeoutMedium time.Duration // screen loads (several queries)
	APITimeoutLong   time.Duration // mutation-plus-refetch sequences
}
