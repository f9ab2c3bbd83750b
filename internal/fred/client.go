// Package fred provides a read-only client for the FRED (Federal
// Reserve Economic Data) observations API.
package fred

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/mauv0809/backtest-pipeline/internal/models"
)

const defaultBaseURL = "https://api.stlouisfed.org"

// Client is a FRED API client.
type Client struct {
	client *resty.Client
	apiKey string
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.client.SetBaseURL(baseURL)
	}
}

// NewClient creates a new FRED API client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")

	c := &Client{
		client: client,
		apiKey: apiKey,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type observationsResponse struct {
	Observations []observation `json:"observations"`
}

type observation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// GetSeries retrieves the observations of one series over the closed
// date interval.
func (c *Client) GetSeries(ctx context.Context, seriesID string, start, end time.Time) ([]models.MacroObservation, error) {
	var result observationsResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"series_id":         seriesID,
			"api_key":           c.apiKey,
			"file_type":         "json",
			"observation_start": start.Format("2006-01-02"),
			"observation_end":   end.Format("2006-01-02"),
		}).
		SetResult(&result).
		Get("/fred/series/observations")

	if err != nil {
		return nil, fmt.Errorf("FRED request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("FRED request failed: status %d for series %s", resp.StatusCode(), seriesID)
	}

	series := make([]models.MacroObservation, 0, len(result.Observations))
	for _, obs := range result.Observations {
		// FRED encodes missing observations as "."
		if obs.Value == "." {
			continue
		}

		date, err := time.Parse("2006-01-02", obs.Date)
		if err != nil {
			continue
		}
		value, err := decimal.NewFromString(obs.Value)
		if err != nil {
			continue
		}

		series = append(series, models.MacroObservation{
			Date:  date,
			Value: value,
		})
	}

	return series, nil
}
