package main

import (
	"net/http"

	"aesvec/internal/config"
	"aesvec/internal/httpserver"
	"aesvec/internal/httpserver/handlers"
	"aesvec/internal/store"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func serveAction(cfg config.Config, lg *zap.SugaredLogger) cli.ActionFunc {
	return func(c *cli.Context) error {
		var rs handlers.RunStore
		if cfg.DatabaseURL != "" {
			st, err := store.Open(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			rs = st
		} else {
			lg.Warnw("DATABASE_URL is empty, runs will not be recorded")
		}
		if cfg.JWTSecret == "" {
			lg.Warnw("JWT_SECRET is empty, /v1 is unauthenticated")
		}
		router := httpserver.NewRouter(rs, []byte(cfg.JWTSecret), lg)
		lg.Infow("listening", "port", cfg.HTTPPort)
		return http.ListenAndServe(":"+cfg.HTTPPort, router)
	}
}
