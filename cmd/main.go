package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "todo_manager/docs"
	"todo_manager/internal/config"
	"todo_manager/internal/handlers"
	"todo_manager/internal/logger"
	"todo_manager/internal/repository"
	"todo_manager/internal/repository/db"
	"todo_manager/internal/server"
	"todo_manager/internal/service"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title        To-Do Manager
// @version      1.0
// @description  Session-based to-do list with per-user tasks, analytics and activity history.
// @BasePath     /
func main() {
	// load .env + configs/config.yml + TODO_* env
	cfg, err := config.Load("configs", ".env")
	if err != nil {
		logger.Get(logger.InfoLevel, logger.FormatConsole).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	if cfg.Log.Level != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	// open storage
	repos, closeDB, err := openRepository(cfg, log)
	if err != nil {
		log.Fatalw("failed to init storage", "driver", cfg.DB.Driver, "err", err)
	}
	defer closeDB()

	// wire dependencies
	services := service.NewService(repos, service.Options{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	webHandler := handlers.NewHandler(services, log, handlers.SessionOptions{
		CookieName: cfg.Session.CookieName,
		Secure:     cfg.Session.Secure,
		TTL:        cfg.Auth.TokenTTL,
	})

	// start HTTP server
	srv := server.New(server.Options{
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	})
	runHTTPServer(srv, cfg.Port, webHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// openRepository picks the storage backend named by db.driver.
func openRepository(cfg *config.Config, log *logger.Logger) (*repository.Repository, func(), error) {
	if cfg.DB.Driver == config.DriverMemory {
		log.Infow("using in-memory storage; data is lost on exit")
		return repository.NewMemoryRepository(), func() {}, nil
	}

	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return nil, nil, err
	}
	log.Infow("sqlite ready", "path", cfg.DB.Path)

	closeFn := func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}
	return repository.NewRepository(conn), closeFn, nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server starting", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
