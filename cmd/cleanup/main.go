// Command cleanup removes media records whose stored object no longer exists.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"growth_journal/internal/app/di"
	mediausecase "growth_journal/internal/feature/media/usecase"
	"growth_journal/internal/platform/config"
	platformdb "growth_journal/internal/platform/db"
	infrahttp "growth_journal/internal/platform/http"
	infraredis "growth_journal/internal/platform/redis"
	"growth_journal/internal/shared/ratelimiter"
)

const jobTimeout = 30 * time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := run(cfg); err != nil {
		slog.Error("cleanup failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	db, err := platformdb.Open(cfg.DB, di.Models()...)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}

	// 削除時にフィードキャッシュも無効化するため、Redisがあればサーバーと同じストアを使う
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr(), cfg.RedisPassword); err == nil {
		rdb = tmp
		defer func() { _ = rdb.Close() }()
	}

	prober := infrahttp.NewURLProber(infrahttp.NewHTTPClient(cfg.Cleanup.ProbeTimeout))
	limiter := ratelimiter.NewRateLimiter(cfg.Cleanup.ProbesPerWave, cfg.Cleanup.WaveInterval)
	uc := mediausecase.NewCleanupUsecase(di.NewMediaStore(db, rdb, cfg.FeedCacheTTL), prober, limiter)

	report, err := uc.Run(ctx)
	if err != nil {
		return err
	}
	slog.Info("cleanup ok",
		"checked", report.Checked,
		"removed", report.Removed,
		"kept", report.Kept,
		"failed", report.Failed,
	)
	return nil
}
