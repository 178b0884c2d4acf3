package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/musegrid/server/internal/config"
	"codeberg.org/musegrid/server/internal/logger"
)

func main() {
	logger.Info("starting musegrid server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// create server with all dependencies
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// start the live activity feed hub
	go srv.hub.Run()

	// start buffer flusher (Redis → Postgres)
	if srv.flusher != nil {
		srv.flusher.Start()
	}

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// notify feed clients and close connections first
	srv.hub.Shutdown()

	// stop flusher (flushes remaining events before stopping)
	if srv.flusher != nil {
		srv.flusher.Stop()
	}

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	srv.cacheStore.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown

	if srv.buffer != nil {
		srv.buffer.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}

	srv.db.Close()

	logger.Info("server stopped")
}
