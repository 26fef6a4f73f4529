package fetch

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
)

func testClient() *Client {
	return NewClient(5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestJSON_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{"daily":{"wave_height_max":[1.5]}}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	var payload struct {
		Daily struct {
			WaveHeightMax []float64 `json:"wave_height_max"`
		} `json:"daily"`
	}

	ok := testClient().JSON(context.Background(), srv.URL, &payload)
	require.True(t, ok)
	assert.Equal(t, []float64{1.5}, payload.Daily.WaveHeightMax)
}

func TestJSON_Non2xxIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	var payload map[string]any
	ok := testClient().JSON(context.Background(), srv.URL, &payload)
	assert.False(t, ok)
}

func TestJSON_MalformedBodyIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, err := w.Write([]byte("{not json"))
		require.NoError(t, err)
	}))
	defer srv.Close()

	var payload map[string]any
	ok := testClient().JSON(context.Background(), srv.URL, &payload)
	assert.False(t, ok)
}

func TestJSON_ConnectionErrorIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	var payload map[string]any
	ok := testClient().JSON(context.Background(), srv.URL, &payload)
	assert.False(t, ok)
}

func TestBytes_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, err := w.Write([]byte{0xff, 0xd8, 0xff})
		require.NoError(t, err)
	}))
	defer srv.Close()

	data, ok := testClient().Bytes(context.Background(), srv.URL)
	require.True(t, ok)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, data)
}

func TestBytes_Non2xxIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	data, ok := testClient().Bytes(context.Background(), srv.URL)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestBytes_TimeoutIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewClient(50*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	data, ok := c.Bytes(context.Background(), srv.URL)
	assert.False(t, ok)
	assert.Nil(t, data)
}
