package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/ternarybob/arbor"

	"github.com/mauv0809/backtest-pipeline/internal/models"
)

const dateLayout = "2006-01-02"

// Writer persists merged tables as CSV files in the output directory.
// Empty tables produce no file.
type Writer struct {
	dir    string
	logger arbor.ILogger
}

// NewWriter creates a new writer for the given output directory.
func NewWriter(dir string, logger arbor.ILogger) *Writer {
	return &Writer{
		dir:    dir,
		logger: logger,
	}
}

// EnsureDir creates the output directory if it does not exist.
func (w *Writer) EnsureDir() error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(filename string, header []string, rows [][]string) (string, error) {
	path := filepath.Join(w.dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", filename, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("writing header to %s: %w", filename, err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("writing row to %s: %w", filename, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flushing %s: %w", filename, err)
	}

	return path, nil
}

// WriteStockData writes the merged price history. Returns the number of
// rows written.
func (w *Writer) WriteStockData(prices []models.PriceRecord) (int, error) {
	if len(prices) == 0 {
		return 0, nil
	}

	header := []string{"Date", "Open", "High", "Low", "Close", "Adjusted Close", "Volume", "Ticker"}
	rows := make([][]string, 0, len(prices))
	for _, p := range prices {
		rows = append(rows, []string{
			p.Date.Format(dateLayout),
			p.Open.String(),
			p.High.String(),
			p.Low.String(),
			p.Close.String(),
			p.AdjustedClose.String(),
			strconv.FormatInt(p.Volume, 10),
			p.Ticker,
		})
	}

	path, err := w.writeCSV("stock_data.csv", header, rows)
	if err != nil {
		return 0, err
	}
	w.logger.Info().Str("path", path).Int("rows", len(rows)).Msg("Stock data saved")
	return len(rows), nil
}

// WriteDividendsData writes the merged dividend history.
func (w *Writer) WriteDividendsData(dividends []models.DividendRecord) (int, error) {
	if len(dividends) == 0 {
		return 0, nil
	}

	header := []string{"Date", "Dividends", "Ticker"}
	rows := make([][]string, 0, len(dividends))
	for _, d := range dividends {
		rows = append(rows, []string{
			d.Date.Format(dateLayout),
			d.Amount.String(),
			d.Ticker,
		})
	}

	path, err := w.writeCSV("dividends_data.csv", header, rows)
	if err != nil {
		return 0, err
	}
	w.logger.Info().Str("path", path).Int("rows", len(rows)).Msg("Dividends data saved")
	return len(rows), nil
}

// WriteEarningsData writes the merged earnings history.
func (w *Writer) WriteEarningsData(earnings []models.EarningsRecord) (int, error) {
	if len(earnings) == 0 {
		return 0, nil
	}

	path, err := w.writeCSV("earnings_data.csv", earningsHeader(), earningsRows(earnings))
	if err != nil {
		return 0, err
	}
	w.logger.Info().Str("path", path).Int("rows", len(earnings)).Msg("Earnings data saved")
	return len(earnings), nil
}

// WriteMacroData writes the macroeconomic series with its dates
// preserved as the first column.
func (w *Writer) WriteMacroData(series []models.MacroObservation) (int, error) {
	if len(series) == 0 {
		return 0, nil
	}

	header := []string{"Date", "Value"}
	rows := make([][]string, 0, len(series))
	for _, obs := range series {
		rows = append(rows, []string{
			obs.Date.Format(dateLayout),
			obs.Value.String(),
		})
	}

	path, err := w.writeCSV("macro_data.csv", header, rows)
	if err != nil {
		return 0, err
	}
	w.logger.Info().Str("path", path).Int("rows", len(rows)).Msg("Macro data saved")
	return len(rows), nil
}

// WriteModellingData writes one ticker's earnings rows with the
// annualized growth rate attached as a constant column.
func (w *Writer) WriteModellingData(ticker string, earnings []models.EarningsRecord, growthRate float64) (int, error) {
	if len(earnings) == 0 {
		return 0, nil
	}

	growth := strconv.FormatFloat(growthRate, 'f', -1, 64)
	header := append(earningsHeader(), "Annualized Growth Rate")
	rows := earningsRows(earnings)
	for i := range rows {
		rows[i] = append(rows[i], growth)
	}

	path, err := w.writeCSV(ticker+"_modelling_data.csv", header, rows)
	if err != nil {
		return 0, err
	}
	w.logger.Info().Str("path", path).Str("ticker", ticker).Msg("Modelling data saved")
	return len(rows), nil
}

func earningsHeader() []string {
	return []string{"Date", "Reported EPS", "Estimated EPS", "Surprise", "Surprise Percent", "Ticker"}
}

func earningsRows(earnings []models.EarningsRecord) [][]string {
	rows := make([][]string, 0, len(earnings))
	for _, e := range earnings {
		rows = append(rows, []string{
			e.Date.Format(dateLayout),
			decimalString(e.ReportedEPS),
			decimalString(e.EstimatedEPS),
			decimalString(e.Surprise),
			decimalString(e.SurprisePercent),
			e.Ticker,
		})
	}
	return rows
}

// decimalString renders an optional decimal, with nil as an empty cell.
func decimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
