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

	"github.com/nats-io/nats.go/jetstream"

	"github.com/riskstream-systems/riskstream-stack/common/logging"
	natsclient "github.com/riskstream-systems/riskstream-stack/common/messaging/nats"
	"github.com/riskstream-systems/riskstream-stack/fraud/internal/config"
	"github.com/riskstream-systems/riskstream-stack/fraud/internal/graph"
	"github.com/riskstream-systems/riskstream-stack/fraud/internal/pipeline"
	"github.com/riskstream-systems/riskstream-stack/fraud/internal/recorder"
	"github.com/riskstream-systems/riskstream-stack/fraud/internal/scoring"
	"github.com/riskstream-systems/riskstream-stack/fraud/internal/server"
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
	).With(logging.Service("fraud"))
	logging.SetDefault(logger)

	slog.Info("Starting Fraud Analysis service",
		slog.String("nats_url", cfg.NATS.URL),
		slog.String("subject", cfg.NATS.Subject),
		slog.String("scoring_url", cfg.Scoring.URL),
		slog.Float64("threshold", cfg.Scoring.Threshold),
	)

	// The bus connection is the only fatal startup dependency.
	natsCfg := natsclient.DefaultConfig()
	natsCfg.URL = cfg.NATS.URL
	natsCfg.Name = "fraud-analysis-service"
	natsCfg.MaxReconnects = cfg.NATS.MaxReconnects
	natsCfg.ReconnectWait = cfg.NATS.ReconnectWait
	busClient, err := natsclient.NewJetStreamClient(natsCfg)
	if err != nil {
		slog.Error("Failed to connect to NATS", logging.Error(err))
		os.Exit(1)
	}
	defer busClient.Close()

	setupCtx, cancelSetup := context.WithTimeout(context.Background(), 10*time.Second)
	if _, err := busClient.CreateOrUpdateStream(setupCtx, natsclient.DefaultStreamConfig(
		cfg.NATS.Stream, []string{cfg.NATS.Subject},
	)); err != nil {
		cancelSetup()
		slog.Error("Failed to provision transaction stream", logging.Error(err))
		os.Exit(1)
	}

	consumer, err := busClient.CreateOrUpdateConsumer(setupCtx, cfg.NATS.Stream,
		natsclient.DefaultConsumerConfig(cfg.NATS.Durable, cfg.NATS.Subject))
	cancelSetup()
	if err != nil {
		slog.Error("Failed to provision durable consumer", logging.Error(err))
		os.Exit(1)
	}
	slog.Info("Durable consumer ready", slog.String("durable", cfg.NATS.Durable))

	graphClient, err := graph.NewNeo4jClient(graph.Options{
		URI:      cfg.Graph.URI,
		Database: cfg.Graph.Database,
		Username: cfg.Graph.Username,
		Password: cfg.Graph.Password,
	})
	if err != nil {
		slog.Error("Failed to configure graph client", logging.Error(err))
		os.Exit(1)
	}
	defer graphClient.Close(context.Background())

	verifyCtx, cancelVerify := context.WithTimeout(context.Background(), 5*time.Second)
	if err := graphClient.VerifyConnectivity(verifyCtx); err != nil {
		// Not fatal: relationship records fail until the graph is reachable.
		slog.Warn("Graph store unreachable at startup", logging.Error(err))
	} else {
		slog.Info("Connected to graph store", slog.String("uri", cfg.Graph.URI))
	}
	cancelVerify()

	sink := recorder.NewFlagSink(recorder.New(graphClient), 1024, 10*time.Second)
	defer sink.Close()

	scorer := scoring.NewClient(cfg.Scoring.URL, cfg.Scoring.Timeout)
	pipe := pipeline.New(scorer, sink, cfg.Scoring.Threshold)

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Messages are handled sequentially, one at a time, preserving delivery
	// order within the stream.
	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		pipe.Handle(runCtx, msg)
	}, jetstream.PullMaxMessages(1))
	if err != nil {
		slog.Error("Failed to start consuming", logging.Error(err))
		os.Exit(1)
	}
	defer consumeCtx.Stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.NewRouter(busClient.IsConnected),
	}

	go func() {
		slog.Info("Fraud Analysis service listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", logging.Error(err))
			stop()
		}
	}()

	<-runCtx.Done()
	slog.Info("Shutting down")

	consumeCtx.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown failed", logging.Error(err))
	}
	if err := busClient.Drain(); err != nil {
		slog.Error("NATS drain failed", logging.Error(err))
	}
}
