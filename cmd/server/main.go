package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"riftmates/internal/config"
	"riftmates/internal/constants"
	fxmodules "riftmates/internal/fx"
	"riftmates/internal/middleware"
	"riftmates/internal/server"
	"riftmates/internal/web"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	compareServer *server.CompareServer,
	cfg *config.Config,
	db *sql.DB,
	logger zerolog.Logger,
) {
	r := mux.NewRouter()
	r.Use(middleware.RequestID(logger))
	r.Use(middleware.Recover(logger))

	r.HandleFunc("/api/compare", compareServer.HandleCompare).Methods(http.MethodPost)
	r.HandleFunc("/api/health", compareServer.HandleHealth).Methods(http.MethodGet)
	r.PathPrefix("/").Handler(web.Handler()).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: c.Handler(r),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database connection")
			}

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
