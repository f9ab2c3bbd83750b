// Package tickers loads the security identifier list that drives a
// pipeline run.
package tickers

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads the ticker column from a CSV file and returns at most
// limit tickers in file order. A limit <= 0 means no truncation.
func Load(path string, limit int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ticker file: %w", err)
	}
	defer f.Close()

	return Read(f, limit)
}

// Read handles the CSV parsing logic. io.Reader so it works with local
// files, uploads, or strings in tests.
func Read(r io.Reader, limit int) ([]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	tickerIdx := -1
	for i, name := range header {
		if name == "Ticker" {
			tickerIdx = i
			break
		}
	}
	if tickerIdx == -1 {
		return nil, fmt.Errorf("missing required column: Ticker")
	}

	var tickers []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv record: %w", err)
		}

		ticker := strings.TrimSpace(record[tickerIdx])
		if ticker == "" {
			continue
		}

		tickers = append(tickers, ticker)
		if limit > 0 && len(tickers) == limit {
			break
		}
	}

	return tickers, nil
}
