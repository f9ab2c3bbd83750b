package dataset

import (
	"context"

	"github.com/ternarybob/arbor"

	"github.com/mauv0809/backtest-pipeline/internal/config"
	"github.com/mauv0809/backtest-pipeline/internal/tickers"
)

// Pipeline runs the two whole-dataset operations. All fetch failures
// degrade to less output; only an unwritable output directory is
// returned as an error.
type Pipeline struct {
	cfg     *config.Config
	fetcher *Fetcher
	writer  *Writer
	logger  arbor.ILogger
}

// NewPipeline creates a new pipeline.
func NewPipeline(cfg *config.Config, fetcher *Fetcher, writer *Writer, logger arbor.ILogger) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		fetcher: fetcher,
		writer:  writer,
		logger:  logger,
	}
}

// loadTickers reads the ticker list. A read failure is logged and
// yields an empty list: the run then simply produces no output.
func (p *Pipeline) loadTickers() []string {
	list, err := tickers.Load(p.cfg.TickerFile, p.cfg.TickerLimit)
	if err != nil {
		p.logger.Error().Str("file", p.cfg.TickerFile).Err(err).Msg("Error reading tickers list")
		return nil
	}
	return list
}

// BuildBacktestData fetches price, dividend, and earnings history for
// every ticker plus the macro series, merges the per-ticker tables, and
// writes the backtest CSV files.
func (p *Pipeline) BuildBacktestData(ctx context.Context) error {
	tickerList := p.loadTickers()
	if len(tickerList) == 0 {
		p.logger.Warn().Msg("No tickers to process, skipping backtest data run")
		return nil
	}
	p.logger.Info().Int("tickers", len(tickerList)).Msg("Starting backtest data run")

	results := make([]Result, 0, len(tickerList))
	for _, ticker := range tickerList {
		prices, dividends := p.fetcher.FetchPriceHistory(ctx, ticker, p.cfg.StartDate, p.cfg.EndDate)
		earnings := p.fetcher.FetchEarningsHistory(ctx, ticker)
		results = append(results, Result{
			Prices:    prices,
			Dividends: dividends,
			Earnings:  earnings,
		})
	}

	prices, dividends, earnings := MergeResults(results)
	macro := p.fetcher.FetchMacroSeries(ctx, p.cfg.SeriesID, p.cfg.StartDate, p.cfg.EndDate)

	if err := p.writer.EnsureDir(); err != nil {
		return err
	}

	if _, err := p.writer.WriteStockData(prices); err != nil {
		p.logger.Error().Err(err).Msg("Error writing stock data")
	}
	if _, err := p.writer.WriteDividendsData(dividends); err != nil {
		p.logger.Error().Err(err).Msg("Error writing dividends data")
	}
	if _, err := p.writer.WriteEarningsData(earnings); err != nil {
		p.logger.Error().Err(err).Msg("Error writing earnings data")
	}
	if _, err := p.writer.WriteMacroData(macro); err != nil {
		p.logger.Error().Err(err).Msg("Error writing macro data")
	}

	p.logger.Info().
		Int("prices", len(prices)).
		Int("dividends", len(dividends)).
		Int("earnings", len(earnings)).
		Int("macro", len(macro)).
		Msg("Backtest data run complete")

	return nil
}

// BuildModellingData fetches earnings history per ticker, computes the
// annualized growth rate, and writes a per-ticker modelling file.
// Tickers with no earnings or no computable growth rate are skipped.
func (p *Pipeline) BuildModellingData(ctx context.Context) error {
	tickerList := p.loadTickers()
	if len(tickerList) == 0 {
		p.logger.Warn().Msg("No tickers to process, skipping modelling data run")
		return nil
	}
	p.logger.Info().Int("tickers", len(tickerList)).Msg("Starting modelling data run")

	if err := p.writer.EnsureDir(); err != nil {
		return err
	}

	written := 0
	for _, ticker := range tickerList {
		earnings := p.fetcher.FetchEarningsHistory(ctx, ticker)
		if len(earnings) == 0 {
			continue
		}

		growthRate, ok := AnnualizedGrowthRate(earnings)
		if !ok {
			p.logger.Warn().Str("ticker", ticker).Msg("Not enough earnings data to compute growth rate")
			continue
		}

		// Earnings come back most recent first; the head rows can be
		// pending events with no reported figure yet.
		var latestEPS float64
		for _, e := range earnings {
			if e.ReportedEPS != nil {
				latestEPS, _ = e.ReportedEPS.Float64()
				break
			}
		}
		p.logger.Info().
			Str("ticker", ticker).
			Float64("growth_rate", growthRate).
			Float64("intrinsic_value", IntrinsicValue(latestEPS, growthRate)).
			Msg("Computed valuation metrics")

		if _, err := p.writer.WriteModellingData(ticker, earnings, growthRate); err != nil {
			p.logger.Error().Str("ticker", ticker).Err(err).Msg("Error saving modelling data")
			continue
		}
		written++
	}

	p.logger.Info().Int("files", written).Msg("Modelling data run complete")

	return nil
}
