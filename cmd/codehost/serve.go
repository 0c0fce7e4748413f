package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/just-nibble/codehost/internal/routes"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func serveCmd(envFile *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is read from the .env file, then the environment, then flags.

Environment variables:
  DB_DRIVER                    postgres or sqlite (default: postgres)
  DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE
                               PostgreSQL connection settings
  DB_SQLITE_PATH               SQLite database file (default: codehost.db)
  DB_MAX_OPEN_CONNS            Pool size (default: 20)
  DB_MAX_IDLE_CONNS            Idle connections kept (default: 5)
  DB_CONN_MAX_LIFETIME         Connection lifetime (default: 30m)
  HTTP_ADDR                    Listen address (default: :8080)
  LOG_LEVEL                    debug, info, warn, error (default: info)
  LOG_FORMAT                   pretty or json (default: pretty)
  CORS_ALLOWED_ORIGINS         Comma-separated origins (default: *)
  AUTO_MIGRATE                 Migrate the schema on start (default: true)
  SEED_DEMO                    Seed demo data into an empty database (default: false)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *envFile, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: HTTP_ADDR)")

	return cmd
}

func runServe(ctx context.Context, envFile, addr string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.HTTPAddr = addr
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	if cfg.AutoMigrate {
		if err := a.migrate(); err != nil {
			return err
		}
	}
	if cfg.SeedDemo {
		if err := a.seed(ctx); err != nil {
			return err
		}
	}

	server := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: routes.NewRouter(routes.Dependencies{
			Users:          a.users,
			Repositories:   a.repositories,
			Commits:        a.commits,
			Issues:         a.issues,
			Stars:          a.stars,
			Search:         a.search,
			DB:             a.store,
			Log:            a.log,
			AllowedOrigins: cfg.CORSAllowedOrigins,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info().Str("addr", cfg.HTTPAddr).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info().Msg("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
