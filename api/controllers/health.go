package controllers

import (
	"fmt"
	"net/http"

	"go.uber.org/multierr"

	"github.com/lucasferreyra/supertrack-backend/api/responses"
	"github.com/lucasferreyra/supertrack-backend/pkg/cache"
	"github.com/lucasferreyra/supertrack-backend/pkg/config"
	"github.com/lucasferreyra/supertrack-backend/pkg/db"
	pkgerrors "github.com/lucasferreyra/supertrack-backend/pkg/errors"
	"github.com/lucasferreyra/supertrack-backend/pkg/logger"
)

const envHeader = "X-Supertrack-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every wired dependency and reports 503 with the
// combined failures when any of them is down. The cache pinger is nil
// when redis was not configured.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, cacheP cache.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		ctx := r.Context()

		var err error
		if dbP != nil {
			if pingErr := dbP.Ping(ctx); pingErr != nil {
				err = multierr.Append(err, fmt.Errorf("db: %w", pingErr))
			}
		}
		if cacheP != nil {
			if pingErr := cacheP.Ping(ctx); pingErr != nil {
				err = multierr.Append(err, fmt.Errorf("cache: %w", pingErr))
			}
		}

		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dependencies not ready"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
