package main

import (
	"context"
	"errors"
	"fortune/internal/account"
	"fortune/internal/api"
	"fortune/internal/api/handler/v1handler"
	"fortune/internal/config"
	"fortune/internal/fortune"
	"fortune/internal/ledger"
	"fortune/internal/worker"
	"fortune/pkg/draw"
	"fortune/pkg/leaderboard"
	"fortune/pkg/logger"
	"fortune/pkg/storage/postgres"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getLeaderboardCache connects to redis when an address is configured. Without
// one the leaderboard is read from postgres on every request.
func getLeaderboardCache(ctx context.Context, cfg *config.Config) (leaderboard.Cache, func()) {
	if cfg.Redis.Addr == "" {
		logger.Info(ctx, "redis address not set, leaderboard cache disabled")

		return leaderboard.NopCache{}, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn(ctx, "could not reach redis, continuing with a cold cache", zap.Error(err))
	}

	return leaderboard.NewRedisCache(client, cfg.Redis.LeaderboardTTL), func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

func setupServices(ctx context.Context, cfg *config.Config, pg *postgres.PgSQL, cache leaderboard.Cache) api.Deps {
	toucher := worker.NewToucher(pg, cfg.Worker.ActivityUniquePeriod)

	fortuneSvc, err := fortune.New(fortune.Deps{
		Ledger:   ledger.New(pg),
		Users:    pg,
		Board:    leaderboard.New(pg, cache),
		Engine:   draw.New(nil),
		Activity: toucher,
	}, fortune.NewOptions(ctx, cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create fortune service", zap.Error(err))
	}

	signer, err := account.NewSigner(cfg.JWT.PrivateKey, cfg.JWT.TTL, cfg.JWT.Issuer)
	if err != nil {
		logger.Fatal(ctx, "could not create token signer", zap.Error(err))
	}
	accountSvc, err := account.New(pg, signer, toucher, account.Options{})
	if err != nil {
		logger.Fatal(ctx, "could not create account service", zap.Error(err))
	}

	return api.Deps{Deps: v1handler.Deps{
		Fortune: fortuneSvc,
		Account: accountSvc,
	}}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			cache, closeCache := getLeaderboardCache(ctx, cfg)
			defer closeCache()

			// workers outlive the signal until the webserver has drained
			riverClient, err := worker.Start(context.WithoutCancel(ctx), pg.Pool, pg,
				worker.Options{MaxWorkers: cfg.Worker.MaxWorkers})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, setupServices(ctx, cfg, pg, cache))

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
