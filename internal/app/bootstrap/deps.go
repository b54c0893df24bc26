// internal/app/bootstrap/deps.go
package bootstrap

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/markjessn/mini-pms/internal/app/api/graphql"
	"go.uber.org/zap"
)

// Deps holds the back-end dependencies for the app. There is no local
// database; the remote API is the only backend.
type Deps struct {
	API     *graphql.Client
	APIHTTP *http.Client
}

// ConnectDB builds the GraphQL client. The remote API is stateless from
// this app's point of view, so there is no connection to establish here,
// only a client to configure.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	hc := &http.Client{}
	api := graphql.New(appCfg.APIHTTPURL, appCfg.APIWSURL, hc, logger)

	logger.Info("api client configured",
		zap.String("http_url", appCfg.APIHTTPURL),
		zap.String("ws_url", appCfg.APIWSURL))

	return Deps{API: api, APIHTTP: hc}, nil
}
