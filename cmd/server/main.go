package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"growth_journal/internal/app/di"
	"growth_journal/internal/app/router"
	authadapters "growth_journal/internal/feature/auth/adapters"
	authhandler "growth_journal/internal/feature/auth/transport/handler"
	authusecase "growth_journal/internal/feature/auth/usecase"
	guestbookadapters "growth_journal/internal/feature/guestbook/adapters"
	guestbookhandler "growth_journal/internal/feature/guestbook/transport/handler"
	guestbookusecase "growth_journal/internal/feature/guestbook/usecase"
	mediahandler "growth_journal/internal/feature/media/transport/handler"
	mediausecase "growth_journal/internal/feature/media/usecase"
	"growth_journal/internal/platform/config"
	platformdb "growth_journal/internal/platform/db"
	platformhandler "growth_journal/internal/platform/http/handler"
	jwtmw "growth_journal/internal/platform/jwt"
	infraredis "growth_journal/internal/platform/redis"
)

const shutdownTimeout = 10 * time.Second

// errMissingJWTSecret is returned at startup when JWT_SECRET is empty.
var errMissingJWTSecret = errors.New("JWT_SECRET must be set")

func main() {
	// .envを読み込む
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := run(cfg); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// run はサーバーを起動し、シグナルを受けるまでブロックします。
// 戻る前に開いたDB・Redis接続を閉じます。
func run(cfg config.Config) error {
	// 空のシークレットではトークンを偽造できるため起動しない
	if cfg.JWTSecret == "" {
		return errMissingJWTSecret
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	objectStorage, err := di.NewObjectStorage(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("configure object storage: %w", err)
	}

	// db
	db, err := platformdb.Open(cfg.DB, di.Models()...)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get database handle: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr(), cfg.RedisPassword); err != nil {
		slog.Warn("Redis unavailable. Running without feed cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	mediaStore := di.NewMediaStore(db, rdb, cfg.FeedCacheTTL)
	guestbookRepo := guestbookadapters.NewGuestbookRepository(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL), cfg.AutoVerifyUsers)
	feedUC := mediausecase.NewFeedUsecase(mediaStore)
	engagementUC := mediausecase.NewEngagementUsecase(mediaStore, userRepo, cfg.AllowAnonymousComments)
	uploadUC := mediausecase.NewUploadUsecase(mediaStore, userRepo)
	deleteUC := mediausecase.NewDeleteUsecase(mediaStore, objectStorage)
	guestbookUC := guestbookusecase.NewGuestbookUsecase(guestbookRepo, guestbookRepo, userRepo)

	// Handler
	handlers := router.Handlers{
		Auth:      authhandler.NewAuthHandler(authUC),
		Media:     mediahandler.NewMediaHandler(feedUC, engagementUC, uploadUC, deleteUC),
		Guestbook: guestbookhandler.NewGuestbookHandler(guestbookUC),
		Health:    platformhandler.NewHealth(sqlDB),
	}

	// ルータ生成
	r := router.NewRouter(handlers, router.Options{
		Verifier:               jwtmw.NewVerifier(cfg.JWTSecret),
		CORSOrigins:            cfg.CORSOrigins,
		WebDir:                 cfg.WebDir,
		AllowAnonymousComments: cfg.AllowAnonymousComments,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
