package main

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	handler "github.com/vncsmyrnk/awards/internal/adapters/handler/http"
	"github.com/vncsmyrnk/awards/internal/adapters/metrics"
	"github.com/vncsmyrnk/awards/internal/adapters/payment/simulated"
	"github.com/vncsmyrnk/awards/internal/adapters/repository"
	"github.com/vncsmyrnk/awards/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/awards/internal/adapters/token"
	"github.com/vncsmyrnk/awards/internal/config"
	"github.com/vncsmyrnk/awards/internal/core/services"
	"github.com/vncsmyrnk/awards/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET not set, sessions will not survive a restart")
		cfg.JWTSecret = uuid.NewString()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, err := repository.Open(ctx, cfg)
	if err != nil {
		slog.Error("failed to open catalog", "driver", cfg.CatalogDriver, "error", err)
		os.Exit(1)
	}
	defer stores.Close()
	slog.Info("catalog ready", "driver", cfg.CatalogDriver)

	recorder := metrics.NewRecorder()
	sessionStore := memory.NewSessionStore()
	tokens := token.NewManager(cfg.JWTSecret, cfg.SessionTTL)

	catalogSvc := services.NewCatalogService(stores.Catalog)
	sessionSvc := services.NewSessionService(catalogSvc, sessionStore, tokens, recorder, cfg.SessionTTL)
	votingSvc := services.NewVotingService(sessionStore, recorder)
	donationSvc := services.NewDonationService(simulated.NewProcessor(cfg.DonationDelay), recorder, cfg.DonationHistorySize)
	adminSvc := services.NewAdminService(catalogSvc, stores.Dashboard)

	router := handler.NewHandler(
		handler.NewCatalogHandler(catalogSvc),
		handler.NewSessionHandler(sessionSvc, cfg.CookieSecure),
		handler.NewBallotHandler(votingSvc),
		handler.NewDonationHandler(donationSvc),
		handler.NewAdminHandler(adminSvc),
		sessionSvc,
		recorder.Handler(),
	)
	server := &stdhttp.Server{Addr: cfg.HTTPAddr, Handler: router}

	go services.RunSessionSweeper(ctx, sessionSvc, cfg.SessionSweepInterval)

	go func() {
		slog.Info("listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
