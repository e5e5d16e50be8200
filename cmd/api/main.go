package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wellux/bloglist-backend/internal/api"
	"github.com/wellux/bloglist-backend/internal/auth"
	"github.com/wellux/bloglist-backend/internal/config"
	"github.com/wellux/bloglist-backend/internal/db"
	"github.com/wellux/bloglist-backend/internal/logger"
	"github.com/wellux/bloglist-backend/internal/metrics"
	"github.com/wellux/bloglist-backend/internal/repository/mongodb"
	"github.com/wellux/bloglist-backend/internal/services"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Error("mongo connect", "err", err)
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	database := client.Database(cfg.MongoDB)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Error("ensure indexes", "err", err)
		os.Exit(1)
	}

	repos := mongodb.NewRepositories(database)
	tm := auth.NewTokenManager(cfg.Secret)
	hasher := auth.NewHasher(cfg.BCryptCost)

	userSvc := services.NewUserService(repos.Users, repos.Blogs, hasher, tm)
	blogSvc := services.NewBlogService(repos.Blogs)

	metrics.Init()
	r := api.NewRouter(cfg, tm, repos.Users, userSvc, blogSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
