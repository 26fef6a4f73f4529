// Package metservice fetches the MetService local forecast for Kaikoura.
package metservice

import (
	"context"

	"spearo/internal/conditions"
	"spearo/internal/fetch"
)

const defaultForecastURL = "https://www.metservice.com/publicData/localForecastKaikoura"

// Client queries the MetService public local-forecast endpoint.
type Client struct {
	fetcher     *fetch.Client
	forecastURL string
}

// NewClient creates a MetService client over the given fetcher.
func NewClient(fetcher *fetch.Client) *Client {
	return &Client{
		fetcher:     fetcher,
		forecastURL: defaultForecastURL,
	}
}

// LocalForecast returns the per-day forecast, or nil when the data could
// not be fetched.
func (c *Client) LocalForecast(ctx context.Context) *conditions.Forecast {
	var fc conditions.Forecast
	if !c.fetcher.JSON(ctx, c.forecastURL, &fc) {
		return nil
	}
	return &fc
}
