package openmeteo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spearo/internal/fetch"
)

func testClient(marineURL, weatherURL string) *Client {
	return &Client{
		fetcher:       fetch.NewClient(5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil))),
		marineBaseURL: marineURL,
		weatherBase:   weatherURL,
	}
}

func TestMarine_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "-42.4", r.URL.Query().Get("latitude"))
		assert.Equal(t, "173.7", r.URL.Query().Get("longitude"))
		assert.Equal(t, "Pacific/Auckland", r.URL.Query().Get("timezone"))
		assert.Equal(t, "wave_height_max", r.URL.Query().Get("daily"))

		_, err := w.Write([]byte(`{"daily":{"wave_height_max":[1.5,1.2]}}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	data := testClient(srv.URL, srv.URL).Marine(context.Background())
	require.NotNil(t, data)
	assert.Equal(t, []float64{1.5, 1.2}, data.Daily.WaveHeightMax)
}

func TestMarine_UpstreamErrorIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	assert.Nil(t, testClient(srv.URL, srv.URL).Marine(context.Background()))
}

func TestWeather_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "temperature_2m,wind_speed_10m,precipitation_probability", r.URL.Query().Get("hourly"))

		_, err := w.Write([]byte(`{"hourly":{"wind_speed_10m":[5.0],"precipitation_probability":[20]}}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	data := testClient(srv.URL, srv.URL).Weather(context.Background())
	require.NotNil(t, data)
	assert.Equal(t, []float64{5.0}, data.Hourly.WindSpeed10m)
	assert.Equal(t, []float64{20}, data.Hourly.PrecipitationProbability)
}

func TestWeather_MalformedBodyIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, err := w.Write([]byte("<html>offline</html>"))
		require.NoError(t, err)
	}))
	defer srv.Close()

	assert.Nil(t, testClient(srv.URL, srv.URL).Weather(context.Background()))
}
