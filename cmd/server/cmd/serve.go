package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"usercrud/internal/app/server/api"
	"usercrud/internal/app/server/config"
	"usercrud/internal/domain/user"
	"usercrud/internal/infrastructure/storage/memory"
	"usercrud/internal/infrastructure/storage/postgres"
	"usercrud/internal/infrastructure/storage/sqlite"
	"usercrud/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP-сервер хранилища",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.MustLoad()
		log := logger.NewWithLevel(cfg.Env, cfg.Logger.LogLevel)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		repo, closeRepo, err := openRepository(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer closeRepo()

		srv := &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           api.New(repo, cfg.Auth.TokenHash, log),
			ReadHeaderTimeout: 5 * time.Second,
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			log.Info("starting store server",
				"address", cfg.Server.RunAddress,
				"driver", cfg.Storage.Driver,
				"auth", cfg.Auth.TokenHash != "",
			)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			log.Info("shutting down store server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

// openRepository выбирает реализацию хранилища по STORAGE_DRIVER
func openRepository(ctx context.Context, cfg *config.Config, log *slog.Logger) (user.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		repo, err := sqlite.New(cfg.Storage.SQLitePath, log)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite: %w", err)
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				log.Error("failed to close sqlite", "error", err)
			}
		}, nil
	case config.DriverPostgres:
		storage, err := postgres.New(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres: %w", err)
		}
		return postgres.NewUserRepository(storage.Pool(), log), func() {
			if err := storage.Close(); err != nil {
				log.Error("failed to close postgres", "error", err)
			}
		}, nil
	default:
		return memory.NewUserRepository(), func() {}, nil
	}
}
