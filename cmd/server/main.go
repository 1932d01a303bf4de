package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"employees-api/internal/config"
	"employees-api/internal/db"
	"employees-api/internal/httpapi"
	"employees-api/internal/service"
)

func main() {
	// -- Logger --
	logger := log.New(os.Stdout, "", log.LstdFlags)

	// -- Configs preload --
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}

	listener, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		logger.Fatalf("listen error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, listener, logger)
	stop()
	if err != nil {
		logger.Fatalf("%v", err)
	}
}

// run serves the API on listener until ctx is cancelled. Store failures abort
// before anything is served.
func run(ctx context.Context, cfg config.Config, listener net.Listener, logger *log.Logger) error {
	defer listener.Close()

	// -- Connect to DB --
	database, err := db.Connect(cfg, logger)
	if err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Printf("close database: %v", err)
		}
	}()

	if err := db.EnsureSchema(ctx, database); err != nil {
		return fmt.Errorf("database schema error: %w", err)
	}
	logger.Printf("employees table ready")

	employeeService := service.NewEmployeeService(database)
	handler := httpapi.NewHandler(employeeService, logger)

	// -- Router --
	mux := http.NewServeMux()
	mux.Handle("/api/", handler)
	mux.HandleFunc("/healthcheck", httpapi.Healthcheck)

	server := &http.Server{
		Handler:           httpapi.WithRequestID(httpapi.WithLogging(logger, mux)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// -- Startup --
	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting server, listening on %s...", listener.Addr())
		serverErr <- server.Serve(listener)
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// -- Shutdown --
	logger.Printf("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
