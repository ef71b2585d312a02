// Package main is the entry point for the menu API.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/foodmenu/menu-system/internal/api"
	"github.com/foodmenu/menu-system/internal/core/service"
	"github.com/foodmenu/menu-system/internal/infrastructure/config"
	mongodb "github.com/foodmenu/menu-system/internal/infrastructure/db/mongo"
	redisdb "github.com/foodmenu/menu-system/internal/infrastructure/db/redis"
	"github.com/foodmenu/menu-system/pkg/logger"
)

// @title        Food Menu API
// @version      1.0
// @description  CRUD backend for a restaurant menu application.
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	menuRepo := mongodb.NewMenuRepository(db)
	if err := menuRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("menu index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	uploads, err := service.NewUploadService(cfg.UploadDir, cfg.PublicBaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("upload storage init failed")
	}

	e := api.NewRouter(db, rdb, uploads, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting menu API")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
