package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/screenhive/platform/internal/api"
	"github.com/screenhive/platform/internal/chat"
	"github.com/screenhive/platform/internal/core/domain"
	"github.com/screenhive/platform/internal/core/service"
	mongodb "github.com/screenhive/platform/internal/infrastructure/db/mongo"
	redisdb "github.com/screenhive/platform/internal/infrastructure/db/redis"
	"github.com/screenhive/platform/internal/pkg/config"
	"github.com/screenhive/platform/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// Signing key and role hierarchy are loaded once here and shared
	// read-only with every component that needs them.
	hierarchy := domain.NewHierarchy()
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	directory := mongodb.NewUserRepository(db)

	accounts := service.NewAccountService(directory, tokens)
	watchlist := service.NewWatchlistService(mongodb.NewWatchlistRepository(db))
	forum := service.NewForumService(mongodb.NewForumRepository(db))

	hub := chat.NewHub(log)
	presence := redisdb.NewPresenceTracker(rdb)
	chatServer := chat.NewServer(chat.NewHandshake(tokens, directory, hierarchy), hub, presence, log)

	e := api.NewRouter(api.Deps{
		Mongo:     db,
		Redis:     rdb,
		Directory: directory,
		Tokens:    tokens,
		Hierarchy: hierarchy,
		Accounts:  accounts,
		Watchlist: watchlist,
		Forum:     forum,
		Chat:      chatServer,
		Log:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
