/*
Package main is the entry point for the SnookerHub API server.

It loads configuration, initializes the global logging system, wires the
player directory, presence hub, and avatar storage into the HTTP router, and
handles operating system interrupt signals for a graceful shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snookerhub/internal/app/directory"
	"snookerhub/internal/app/presence"
	"snookerhub/internal/app/profile"
	"snookerhub/internal/app/storage"
	"snookerhub/internal/configs"
	"snookerhub/internal/handler"
	"snookerhub/internal/pkg/logx"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.InitGlobalLogger(cfg.IsDevelopment())
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Msg("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Player directory: Postgres when a DSN is configured, otherwise the
	// in-memory fixture directory (development only).
	var dir directory.UserDirectory
	var closeDB func()

	if cfg.DatabaseDSN != "" {
		pool, err := directory.NewPool(cfg.DatabaseDSN)
		if err != nil {
			logx.Fatal(err, "Failed to connect to database")
		}
		dir = directory.NewPostgresDirectory(pool)
		closeDB = pool.Close
	} else {
		logx.Warn("DATABASE_URL not set, using in-memory fixture directory")
		dir = directory.NewMemoryDirectory(directory.FixtureUsers())
		closeDB = func() {}
	}

	var avatars storage.AvatarStore
	if cfg.StorageConfigured() {
		avatars, err = storage.NewAvatarStore(storage.ServiceConfig{
			S3BucketName:      cfg.S3BucketName,
			S3Endpoint:        cfg.S3Endpoint,
			S3AccessKeyID:     cfg.S3AccessKeyID,
			S3SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			logx.Fatal(err, "Failed to initialize avatar storage")
		}
	} else {
		logx.Warn("Avatar storage not configured, presigned uploads disabled")
	}

	hub := presence.NewHub()
	catalog := profile.NewCatalog(nil)

	deps := &handler.AppDeps{
		Config:   cfg,
		Dir:      dir,
		Profiles: profile.NewResolver(dir, catalog),
		Catalog:  catalog,
		Presence: hub,
		Avatars:  avatars,
	}

	router := handler.Router(deps)

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("SnookerHub Server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	hub.Shutdown()
	closeDB()

	logx.Info("Server gracefully stopped.")
}
