// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown tears down backend resources. The GraphQL client keeps no open
// state beyond pooled HTTP connections.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if deps.APIHTTP != nil {
		logger.Info("closing idle API connections")
		deps.APIHTTP.CloseIdleConnections()
	}
	return nil
}
