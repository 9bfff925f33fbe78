package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskstream-systems/riskstream-stack/common/logging"
	natsclient "github.com/riskstream-systems/riskstream-stack/common/messaging/nats"
	"github.com/riskstream-systems/riskstream-stack/transaction/internal/config"
	"github.com/riskstream-systems/riskstream-stack/transaction/internal/handlers"
	"github.com/riskstream-systems/riskstream-stack/transaction/internal/server"
	"github.com/riskstream-systems/riskstream-stack/transaction/internal/service"
	"github.com/riskstream-systems/riskstream-stack/transaction/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(
		logging.ParseLevel(cfg.Logging.Level),
		cfg.Logging.Format,
	).With(logging.Service("transaction"))
	logging.SetDefault(logger)

	slog.Info("Starting Transaction service",
		slog.Int("port", cfg.Server.Port),
		slog.String("nats_url", cfg.NATS.URL),
		slog.String("subject", cfg.NATS.Subject),
	)

	// The bus connection is the only fatal startup dependency.
	natsCfg := natsclient.DefaultConfig()
	natsCfg.URL = cfg.NATS.URL
	natsCfg.Name = "transaction-service"
	natsCfg.MaxReconnects = cfg.NATS.MaxReconnects
	natsCfg.ReconnectWait = cfg.NATS.ReconnectWait
	busClient, err := natsclient.NewJetStreamClient(natsCfg)
	if err != nil {
		slog.Error("Failed to connect to NATS", logging.Error(err))
		os.Exit(1)
	}
	defer busClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if _, err := busClient.CreateOrUpdateStream(ctx, natsclient.DefaultStreamConfig(
		cfg.NATS.Stream, []string{cfg.NATS.Subject},
	)); err != nil {
		cancel()
		slog.Error("Failed to provision transaction stream", logging.Error(err))
		os.Exit(1)
	}
	cancel()
	slog.Info("Transaction stream ready", slog.String("stream", cfg.NATS.Stream))

	store, err := storage.NewRedisStore(cfg.Redis.URL)
	if err != nil {
		slog.Error("Failed to connect to Redis", logging.Error(err))
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Connected to transaction store", slog.String("redis_url", cfg.Redis.URL))

	svc := service.NewIngestService(busClient, store, cfg.NATS.Subject)
	router := server.NewRouter(handlers.NewTransactionHandler(svc))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Transaction service listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", logging.Error(err))
			stop()
		}
	}()

	<-shutdownCtx.Done()
	slog.Info("Shutting down")

	ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("HTTP shutdown failed", logging.Error(err))
	}
	if err := busClient.Drain(); err != nil {
		slog.Error("NATS drain failed", logging.Error(err))
	}
}
