package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/ternarybob/arbor"
	arbormodels "github.com/ternarybob/arbor/models"

	"github.com/mauv0809/backtest-pipeline/internal/config"
	"github.com/mauv0809/backtest-pipeline/internal/dataset"
	"github.com/mauv0809/backtest-pipeline/internal/eodhd"
	"github.com/mauv0809/backtest-pipeline/internal/fred"
)

func main() {
	logger := arbor.NewLogger().WithConsoleWriter(arbormodels.WriterConfiguration{
		Type:       arbormodels.LogWriterTypeConsole,
		TimeFormat: "2006-01-02 15:04:05",
	}).WithLevelFromString("info")

	// Load .env file if it exists (local dev)
	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	market := eodhd.NewClient(cfg.MarketAPIKey, eodhd.WithLogger(logger))
	macro := fred.NewClient(cfg.FredAPIKey)

	fetcher := dataset.NewFetcher(market, macro, logger)
	writer := dataset.NewWriter(cfg.OutputDir, logger)
	pipeline := dataset.NewPipeline(cfg, fetcher, writer, logger)

	if err := pipeline.BuildBacktestData(context.Background()); err != nil {
		logger.Error().Err(err).Msg("Backtest data run failed")
		os.Exit(1)
	}
}
