// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Mini PMS.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_http_url, session_name, etc.
//   - Environment variables: MINIPMS_API_HTTP_URL, MINIPMS_SESSION_NAME, etc.
//   - Command-line flags: --api_http_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_http_url", Default: "http://localhost:4000/graphql", Desc: "Remote API endpoint for queries and mutations"},
	{Name: "api_ws_url", Default: "ws://localhost:4000/graphql", Desc: "Remote API websocket endpoint for subscriptions"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "minipms-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// API timeout tuning. Blank keeps the built-in defaults.
	{Name: "api_timeout_short", Default: "", Desc: "Timeout for single-entity fetches (e.g. 5s)"},
	{Name: "api_timeout_medium", Default: "", Desc: "Timeout for full screen loads (e.g. 10s)"},
	{Name: "api_timeout_long", Default: "", Desc: "Timeout for mutation-plus-refetch sequences (e.g. 30s)"},
}

// LoadConfig loads WAFFLE core config and app-specific config. It is called
// early in startup so both WAFFLE and the app have configuration before any
// backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "MINIPMS", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIHTTPURL: appValues.String("api_http_url"),
		APIWSURL:   appValues.String("api_ws_url"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		APITimeoutShort:  appValues.Duration("api_timeout_short", 0),
		APITimeoutMedium: appValues.Duration("api_timeout_medium", 0),
		APITimeoutLong:   appValues.Duration("api_timeout_long", 0),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation before startup
// proceeds. The API endpoints are the app's only backend, so a malformed
// URL should fail here rather than on the first request.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateEndpoint(appCfg.APIHTTPURL, "http", "https"); err != nil {
		logger.Error("invalid api_http_url", zap.Error(err))
		return fmt.Errorf("invalid api_http_url: %w", err)
	}
	if err := validateEndpoint(appCfg.APIWSURL, "ws", "wss"); err != nil {
		logger.Error("invalid api_ws_url", zap.Error(err))
		return fmt.Errorf("invalid api_ws_url: %w", err)
	}
	for _, d := range []time.Duration{appCfg.APITimeoutShort, appCfg.APITimeoutMedium, appCfg.APITimeoutLong} {
		if d < 0 {
			return fmt.Errorf("api timeouts must not be negative")
		}
	}
	return nil
}

func validateEndpoint(raw string, schemes ...string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return nil
		}
	}
	return fmt.Errorf("%q has scheme %q, want one of %v", raw, u.Scheme, schemes)
}
