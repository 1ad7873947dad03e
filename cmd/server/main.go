package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/auditdesk/auditdesk/internal/backend"
	"github.com/auditdesk/auditdesk/internal/config"
	"github.com/auditdesk/auditdesk/internal/importer"
	"github.com/auditdesk/auditdesk/internal/logging"
	"github.com/auditdesk/auditdesk/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"backend_url", cfg.Backend.BaseURL,
		"import_max_file_size", cfg.Import.MaxFileSize,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Build the backend client. The dashboard holds no data of its own,
	// so this client is the only data source the server has.
	client := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	// Probe the backend once at startup. A failure is logged, not fatal:
	// every page renders with an inline alert when the backend is down,
	// and the staged import flow keeps working against local state.
	probeCtx, cancelProbe := context.WithTimeout(context.Background(), 5*time.Second)
	if employees, err := client.ListEmployees(probeCtx); err != nil {
		slog.Warn("backend not reachable at startup", "error", err)
	} else {
		slog.Info("backend reachable", "roster_size", len(employees))
	}
	cancelProbe()

	// Create the import service with config
	service := importer.NewService(client, cfg.Import.ActivityEntries)

	// Create server with config
	server := web.NewServer(cfg, service, client)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// An in-flight submission holds its batch until the backend
		// answers; give it a moment before pulling the listener.
		if service.SubmitInFlight() {
			slog.Info("waiting for in-flight submission to finish")
			waitForSubmit(shutdownCtx, service)
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}

// waitForSubmit polls until the running submission releases its slot or
// the shutdown deadline passes.
func waitForSubmit(ctx context.Context, service *importer.Service) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Warn("submission did not finish before shutdown deadline")
			return
		case <-ticker.C:
			if !service.SubmitInFlight() {
				slog.Info("submission finished")
				return
			}
		}
	}
}
