// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/markjessn/mini-pms/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after config validation
// and backend setup, before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	// Zero values keep the defaults.
	timeouts.Configure(timeouts.Config{
		Short:  appCfg.APITimeoutShort,
		Medium: appCfg.APITimeoutMedium,
		Long:   appCfg.APITimeoutLong,
	})
	return nil
}
