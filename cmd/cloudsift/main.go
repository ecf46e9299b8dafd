// CloudSift gateway server — serves the query API, the chat SSE
// endpoint, and the background vector-index pipeline.
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

	"github.com/cloudsift/cloudsift/pkg/agent"
	"github.com/cloudsift/cloudsift/pkg/alertbus"
	"github.com/cloudsift/cloudsift/pkg/api"
	"github.com/cloudsift/cloudsift/pkg/cleanup"
	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/costguard"
	"github.com/cloudsift/cloudsift/pkg/database"
	"github.com/cloudsift/cloudsift/pkg/logstore"
	"github.com/cloudsift/cloudsift/pkg/masking"
	"github.com/cloudsift/cloudsift/pkg/planner"
	"github.com/cloudsift/cloudsift/pkg/services"
	"github.com/cloudsift/cloudsift/pkg/tools"
	"github.com/cloudsift/cloudsift/pkg/vectorindex"
	"github.com/cloudsift/cloudsift/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	slog.Info("Starting CloudSift", "version", version.Full())

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	dbConfig := database.LoadConfigFromEnv()
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

	// Fact-table pool, separate from the ent connection.
	storePool, err := logstore.Connect(ctx, dbConfig.DSN(), cfg.Pools.StoreConns)
	if err != nil {
		slog.Error("Failed to connect log store pool", "error", err)
		os.Exit(1)
	}
	defer storePool.Close()

	vectorPool, err := logstore.Connect(ctx, dbConfig.DSN(), cfg.Pools.VectorConns)
	if err != nil {
		slog.Error("Failed to connect vector pool", "error", err)
		os.Exit(1)
	}
	defer vectorPool.Close()

	store := logstore.New(storePool, logger)
	queryPlanner := planner.New(cfg.Query)
	guard := costguard.New(store, cfg.Query.MaxBytesScanned)

	sessionService := services.NewSessionService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	checkpointService := services.NewCheckpointService(dbClient.Client)
	invocationService := services.NewInvocationService(dbClient.Client)
	deadLetterService := services.NewDeadLetterService(dbClient.Client)
	slog.Info("Services initialized")

	retention := cleanup.NewService(cfg.Retention, sessionService, deadLetterService)
	retention.Start(ctx)
	defer retention.Stop()

	// Vector index: embeds error alerts as they arrive and reaps expired
	// clusters hourly.
	embedder := vectorindex.NewOpenAIEmbedder(os.Getenv("OPENAI_API_KEY"), cfg.Embedding)
	writer := vectorindex.NewWriter(vectorPool, embedder, cfg.Embedding, logger)

	listener := alertbus.NewListener(dbConfig.DSN(), func(ctx context.Context, alert alertbus.ErrorAlert) {
		if err := writer.HandleAlert(ctx, alert); err != nil {
			logger.Warn("failed to index error alert", "log_id", alert.LogID, "error", err)
		}
	})
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start alert listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)

	reaperCtx, stopReaper := context.WithCancel(ctx)
	defer stopReaper()
	go writer.RunReaper(reaperCtx)
	slog.Info("Vector index pipeline started")

	masker := masking.NewService(cfg.Agent.PIIRedactionEnabled)

	toolRuntime, err := tools.NewRuntime(queryPlanner, guard, store, writer,
		invocationService, cfg.Agent, logger)
	if err != nil {
		slog.Error("Failed to build tool runtime", "error", err)
		os.Exit(1)
	}

	llmClient, err := agent.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"), cfg.Agent, cfg.Pools.LLMChannels)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}

	orchestrator := agent.NewOrchestrator(llmClient, toolRuntime, sessionService,
		messageService, checkpointService, masker, cfg.Agent, logger)

	server := api.NewServer(cfg, dbClient, queryPlanner, guard, store,
		sessionService, messageService, invocationService, orchestrator, logger)

	httpServer := &http.Server{
		Addr:              ":" + getEnv("HTTP_PORT", "8080"),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		slog.Error("HTTP server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
	slog.Info("CloudSift stopped")
}
