package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopease/console-gateway/internal/api"
	"github.com/shopease/console-gateway/internal/core/service"
	"github.com/shopease/console-gateway/internal/infrastructure/backend"
	"github.com/shopease/console-gateway/internal/infrastructure/config"
	mongodb "github.com/shopease/console-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/shopease/console-gateway/internal/infrastructure/db/redis"
	"github.com/shopease/console-gateway/internal/infrastructure/queue"
	"github.com/shopease/console-gateway/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	// --- Dependencies ---
	auditRepo := mongodb.NewAuditRepository(db)
	auditDispatcher := queue.NewAuditDispatcher(cfg.Audit.Workers, auditRepo, log)
	auditDispatcher.Start(ctx)

	tokenStore := redisdb.NewTokenStore(rdb)
	backendClient := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	sessions := service.NewSessionService(tokenStore, backendClient, service.NewTokenDecoder(), auditDispatcher, log)

	// Restore the session from the stored token before serving: the console
	// observes Loading/Valid/Invalid rather than an uninitialized state.
	if sess, err := sessions.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("session restore failed")
	} else {
		log.Info().Str("status", string(sess.Status)).Msg("session restored")
	}

	e := api.NewRouter(api.Deps{
		Sessions:    sessions,
		Guard:       service.NewGuard(),
		Audit:       auditDispatcher,
		AuditReader: auditRepo,
		Redis:       rdb,
		Mongo:       db,
		Log:         log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("console gateway started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
