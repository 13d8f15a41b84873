package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"titanguard/internal/adapters/primary/http/handlers"
	"titanguard/internal/adapters/secondary/artifactstore"
	"titanguard/internal/config"
	"titanguard/internal/core/services"
	"titanguard/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Secondary Adapter (Artifact Store)
	store := artifactstore.NewFileStore(cfg.Model.Path, cfg.Model.MetadataPath)

	// Core Service (Model Manager)
	manager := services.NewManager(store)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	err = manager.Load(loadCtx)
	cancelLoad()
	if err != nil {
		// A process without a model cannot serve predictions; exit rather
		// than answer every request with an error.
		log.Fatalf("load model: %v", err)
	}

	info := manager.Info()
	metrics.SetModelState(string(info.State))
	metrics.SetModelInfo(info.ModelVersion, info.Algorithm)

	// Primary Adapter (HTTP)
	h := handlers.New(manager)
	router := handlers.NewRouter(h)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
