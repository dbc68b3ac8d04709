package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/customer-crm/internal/config"
	dbpkg "github.com/BruksfildServices01/customer-crm/internal/db"
	"github.com/BruksfildServices01/customer-crm/internal/routes"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()
	defer closeDB(db, log)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := dbpkg.Prepare(ctx, db, cfg.DB, log); err != nil {
		log.Error("failed to prepare database", zap.Error(err))
		return err
	}

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: routes.NewRouter(db, cfg, log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("failed to start server", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	return shutdown(srv, cfg, log)
}

func shutdown(srv *http.Server, cfg *config.Config, log *zap.Logger) error {
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
		return err
	}

	log.Info("server stopped")
	return nil
}
