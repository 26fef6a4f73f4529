// Package openmeteo fetches marine and weather forecasts from the free
// Open-Meteo APIs for the fixed Kaikoura location.
package openmeteo

import (
	"context"
	"net/url"
	"strconv"

	"spearo/internal/conditions"
	"spearo/internal/fetch"
)

const (
	defaultMarineBaseURL  = "https://marine-api.open-meteo.com/v1/marine"
	defaultWeatherBaseURL = "https://api.open-meteo.com/v1/forecast"

	// Kaikoura, New Zealand.
	latitude  = -42.4
	longitude = 173.7
	timezone  = "Pacific/Auckland"
)

// Client queries the Open-Meteo marine and weather forecast endpoints.
type Client struct {
	fetcher       *fetch.Client
	marineBaseURL string
	weatherBase   string
}

// NewClient creates an Open-Meteo client over the given fetcher.
func NewClient(fetcher *fetch.Client) *Client {
	return &Client{
		fetcher:       fetcher,
		marineBaseURL: defaultMarineBaseURL,
		weatherBase:   defaultWeatherBaseURL,
	}
}

// Marine returns the daily marine forecast, or nil when the data could not
// be fetched.
func (c *Client) Marine(ctx context.Context) *conditions.MarineData {
	params := locationParams()
	params.Set("daily", "wave_height_max")
	params.Set("hourly", "wave_height,wave_direction,wave_period")

	var data conditions.MarineData
	if !c.fetcher.JSON(ctx, c.marineBaseURL+"?"+params.Encode(), &data) {
		return nil
	}
	return &data
}

// Weather returns the hourly weather forecast, or nil when the data could
// not be fetched.
func (c *Client) Weather(ctx context.Context) *conditions.WeatherData {
	params := locationParams()
	params.Set("hourly", "temperature_2m,wind_speed_10m,precipitation_probability")

	var data conditions.WeatherData
	if !c.fetcher.JSON(ctx, c.weatherBase+"?"+params.Encode(), &data) {
		return nil
	}
	return &data
}

func locationParams() url.Values {
	return url.Values{
		"latitude":  {strconv.FormatFloat(latitude, 'g', -1, 64)},
		"longitude": {strconv.FormatFloat(longitude, 'g', -1, 64)},
		"timezone":  {timezone},
	}
}
