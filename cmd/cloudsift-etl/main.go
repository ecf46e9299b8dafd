// CloudSift ETL — normalizes raw source tables into the canonical fact
// table. Runs as a scheduled batch job.
//
// Exit codes: 0 success, 2 configuration or validation failure, 3 an
// external dependency was unreachable, 4 the run finished with dead
// letters or failed windows, 1 unexpected error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/cloudsift/cloudsift/pkg/alertbus"
	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/database"
	"github.com/cloudsift/cloudsift/pkg/etl"
	"github.com/cloudsift/cloudsift/pkg/logstore"
	"github.com/cloudsift/cloudsift/pkg/masking"
	"github.com/cloudsift/cloudsift/pkg/services"
	"github.com/cloudsift/cloudsift/pkg/vectorindex"
)

const (
	exitOK         = 0
	exitUnexpected = 1
	exitConfig     = 2
	exitDependency = 3
	exitPartial    = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	mode := flag.String("mode", "incremental",
		"incremental processes the lookback window; full reprocesses one day and backfills the vector index")
	day := flag.String("day", "", "day to reprocess in full mode (YYYY-MM-DD, default yesterday)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return exitConfig
	}
	if *mode != "incremental" && *mode != "full" {
		slog.Error("Unknown mode", "mode", *mode)
		return exitConfig
	}

	fullDay := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	if *day != "" {
		parsed, err := time.Parse("2006-01-02", *day)
		if err != nil {
			slog.Error("Invalid -day, expected YYYY-MM-DD", "day", *day, "error", err)
			return exitConfig
		}
		fullDay = parsed.UTC()
	}

	ctx := context.Background()

	dbConfig := database.LoadConfigFromEnv()
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return exitDependency
	}
	defer dbClient.Close()

	pool, err := logstore.Connect(ctx, dbConfig.DSN(), cfg.Pools.StoreConns)
	if err != nil {
		slog.Error("Failed to connect fact-table pool", "error", err)
		return exitDependency
	}
	defer pool.Close()

	workerID := fmt.Sprintf("etl-%s-%s", hostname(), uuid.New().String()[:8])
	runner := etl.NewRunner(
		etl.NewPGReader(pool),
		logstore.New(pool, logger),
		services.NewETLJobService(dbClient.Client, cfg.ETL.MaxAttempts),
		services.NewDeadLetterService(dbClient.Client),
		alertbus.NewPublisher(dbClient.DB()),
		masking.NewService(cfg.Agent.PIIRedactionEnabled),
		cfg.ETL,
		workerID,
		logger,
	)

	var results []etl.WindowResult
	switch *mode {
	case "incremental":
		results, err = runner.RunIncremental(ctx, time.Now().UTC())
	case "full":
		results, err = runner.RunFull(ctx, fullDay)
	}
	if err != nil {
		slog.Error("ETL run failed", "mode", *mode, "error", err)
		return exitUnexpected
	}

	var rowsIn, rowsOut, deadLetters, skipped int
	for _, res := range results {
		rowsIn += res.RowsIn
		rowsOut += res.RowsOut
		deadLetters += res.DeadLetters
		if res.Skipped {
			skipped++
		}
	}
	slog.Info("ETL run complete",
		"mode", *mode,
		"windows", len(results),
		"rows_in", rowsIn,
		"rows_out", rowsOut,
		"dead_letters", deadLetters,
		"skipped", skipped,
	)

	// Full runs also repair the vector index: any error row that missed
	// its alert gets embedded now.
	if *mode == "full" {
		embedder := vectorindex.NewOpenAIEmbedder(os.Getenv("OPENAI_API_KEY"), cfg.Embedding)
		writer := vectorindex.NewWriter(pool, embedder, cfg.Embedding, logger)
		indexed, err := writer.Backfill(ctx, fullDay)
		if err != nil {
			slog.Error("Vector index backfill failed", "error", err)
			return exitPartial
		}
		slog.Info("Vector index backfill complete", "indexed", indexed)
	}

	if deadLetters > 0 {
		return exitPartial
	}
	return exitOK
}

func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "local"
}
