// Meetsched server: verified meeting scheduling with a constraint-checking
// backend and a runtime property monitor, exposed over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/codeready-toolchain/meetsched/pkg/api"
	"github.com/codeready-toolchain/meetsched/pkg/config"
	"github.com/codeready-toolchain/meetsched/pkg/database"
	"github.com/codeready-toolchain/meetsched/pkg/services"
	"github.com/codeready-toolchain/meetsched/pkg/verification/monitor"
	"github.com/codeready-toolchain/meetsched/pkg/verification/solver"
	"github.com/codeready-toolchain/meetsched/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting meetsched",
		"version", version.Full(),
		"http_addr", cfg.HTTPAddr,
		"solver_enabled", cfg.SolverEnabled,
		"slot_increment", cfg.SlotIncrement)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Verification components. The monitor is volatile and starts empty; it
	// repopulates its capacity table as rooms are touched.
	backend := solver.NewConstraintSolver(cfg.SolverTimeout, cfg.SlotIncrement)
	backend.SetEnabled(cfg.SolverEnabled)
	mon := monitor.New()

	roomService := services.NewRoomService(dbClient.Client, mon)
	participantService := services.NewParticipantService(dbClient.Client)
	meetingService := services.NewMeetingService(dbClient.Client, roomService, participantService, backend, mon)
	slog.Info("Services initialized")

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewServer(dbClient, meetingService, roomService, participantService).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Periodic liveness sweep: flag meetings still unresolved past their
	// start time.
	g.Go(func() error {
		ticker := time.NewTicker(cfg.PendingCheckInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if violations := meetingService.CheckPending(); len(violations) > 0 {
					slog.Warn("Pending sweep found unresolved meetings", "count", len(violations))
				}
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server error triggered shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Shutdown complete")
}
