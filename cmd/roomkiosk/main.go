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

	"github.com/navikt/roomkiosk/internal/api"
	"github.com/navikt/roomkiosk/internal/config"
	"github.com/navikt/roomkiosk/internal/logging"
	"github.com/navikt/roomkiosk/internal/repository"
	"github.com/navikt/roomkiosk/internal/schedule"
	"github.com/navikt/roomkiosk/internal/service"
	"github.com/navikt/roomkiosk/internal/web"
)

const maxBodyBytes = 1 << 20

func main() {
	cfg, err := config.LoadWithFile(os.Getenv("KIOSK_ENV_FILE"))
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New("roomkiosk", cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	// Initialize the repository using the factory
	repo, closeRepo, err := repository.NewRepository(cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRepo(); err != nil {
			logger.Error("error closing room store", "error", err)
		}
	}()

	// Initialize the service layer
	rooms := service.NewRoomService(repo, service.Options{
		Timeline: schedule.NewTimeline(cfg.Kiosk.Window(), cfg.Kiosk.MaxFreeBlock),
		Logger:   logger,
	})

	configured, err := config.RoomsOrDefault(cfg.RoomsFile, rooms.Now())
	if err != nil {
		return err
	}
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	_, err = rooms.SeedRooms(seedCtx, configured)
	cancelSeed()
	if err != nil {
		return err
	}

	// Live updates: push every change and refresh on a tick
	webHandler := web.NewHandler(rooms, cfg.Kiosk.TickInterval, logger)
	rooms.RegisterUpdateCallback(webHandler.NotifyRoomUpdate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	webHandler.Start(ctx)

	if cfg.Admin.PIN == "" {
		logger.Warn("KIOSK_ADMIN_PIN not set, admin endpoints are disabled")
	}
	mux := api.SetupRoutes(rooms, web.NewPINAuth(cfg.Admin.PIN, logger), logger)
	webHandler.SetupRoutes(mux)

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: web.Chain(mux,
			web.HTTPProtocolMiddleware,
			web.WithRequestID,
			web.WithAccessLog(logger),
			web.WithBodyLimit(maxBodyBytes),
		),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disable write timeout for SSE connections
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting roomkiosk server", "port", cfg.Port)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		logger.Info("shutting down server")

		// First, shutdown the web handler to close SSE connections
		webHandler.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			server.Close()
			return err
		}

		logger.Info("server gracefully stopped")
		return nil
	}
}
