package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "inventory_dashboard/docs"
	"inventory_dashboard/internal/catalog"
	"inventory_dashboard/internal/config"
	"inventory_dashboard/internal/handlers"
	"inventory_dashboard/internal/logger"
	"inventory_dashboard/internal/repository"
	"inventory_dashboard/internal/repository/db"
	"inventory_dashboard/internal/server"
	"inventory_dashboard/internal/service"
	"inventory_dashboard/internal/store"
)

// @title                       Inventory Dashboard API
// @version                     1.0
// @description                 Authenticated product dashboard over a generated catalog.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// load configs/config.yml + DASHBOARD_* env
	cfg, err := config.Load("config", "configs", ".")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	// open DB
	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DB.Path)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	issuer, err := service.NewTokenIssuer(cfg.Auth)
	if err != nil {
		log.Fatalw("invalid auth config", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(conn)
	st := store.New(store.InitialState())
	fetcher := catalog.NewFetcher(catalog.NewGenerator(cfg.Catalog.Size, cfg.Catalog.Seed), cfg.Catalog.Latency)
	services := service.NewService(service.Deps{
		Repos:   repos,
		Store:   st,
		Fetcher: fetcher,
		Issuer:  issuer,
		Log:     log,
	})
	apiHandler := handlers.NewHandler(services, log,
		handlers.WithLoginRateLimit(cfg.Auth.LoginRatePerSec, cfg.Auth.LoginBurst))

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := services.EnsureCredential(ctx, cfg.Auth.Username, cfg.Auth.Password); err != nil {
		log.Fatalw("failed to seed credential", "err", err)
	}
	if err := services.Restore(ctx); err != nil {
		log.Warnw("view state not restored", "err", err)
	}

	persisterDone := make(chan struct{})
	go func() {
		defer close(persisterDone)
		services.Persister.Run(ctx, cfg.PersistInterval)
	}()

	// start HTTP server
	srv := server.New(server.Timeouts{
		ReadHeader: cfg.Server.ReadHeaderTimeout,
		Write:      cfg.Server.WriteTimeout,
		Idle:       cfg.Server.IdleTimeout,
	})
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("server_started", "port", cfg.Port, "token_mode", cfg.Auth.TokenMode, "catalog_size", cfg.Catalog.Size)

	// graceful shutdown
	waitForShutdown(cancel, srv, cfg.Server.ShutdownTimeout, log)
	<-persisterDone
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, timeout time.Duration, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
