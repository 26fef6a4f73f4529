package report

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"spearo/internal/conditions"
	"spearo/internal/observability"
)

// MarineSource supplies the two Open-Meteo payloads. Either may be nil on
// fetch failure.
type MarineSource interface {
	Marine(ctx context.Context) *conditions.MarineData
	Weather(ctx context.Context) *conditions.WeatherData
}

// ForecastSource supplies the MetService local forecast, nil on failure.
type ForecastSource interface {
	LocalForecast(ctx context.Context) *conditions.Forecast
}

// CameraSource supplies the webcam snapshot.
type CameraSource interface {
	Snapshot(ctx context.Context) ([]byte, bool)
}

// Mailer delivers one composed update. Implementations must not retry.
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}

// Runner executes one full rating run: fetch each source, score it, build
// the aggregate report, and hand the rendered body to the mailer. No source
// failure may abort the run; each degrades to its worst-case score.
type Runner struct {
	marine   MarineSource
	forecast ForecastSource
	camera   CameraSource
	mailer   Mailer
	logger   *slog.Logger
	metrics  *observability.Metrics
	ready    atomic.Bool
}

// NewRunner wires the run orchestration.
func NewRunner(marine MarineSource, forecast ForecastSource, camera CameraSource, mailer Mailer, logger *slog.Logger, metrics *observability.Metrics) *Runner {
	return &Runner{
		marine:   marine,
		forecast: forecast,
		camera:   camera,
		mailer:   mailer,
		logger:   logger,
		metrics:  metrics,
	}
}

// CheckReadiness returns nil once at least one run has completed.
func (r *Runner) CheckReadiness(_ context.Context) error {
	if !r.ready.Load() {
		return errors.New("no update run has completed yet")
	}
	return nil
}

// RunOnce performs a single scheduled run and returns the report it built.
// Fetches are sequential; the dominant cost is network latency on three
// small requests, which is inconsequential at a daily cadence.
func (r *Runner) RunOnce(ctx context.Context) Report {
	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID)
	start := time.Now()

	logger.Info("update run started")

	marine := r.marine.Marine(ctx)
	if marine == nil {
		r.metrics.FetchFailures.WithLabelValues("openmeteo_marine").Inc()
	}
	weather := r.marine.Weather(ctx)
	if weather == nil {
		r.metrics.FetchFailures.WithLabelValues("openmeteo_weather").Inc()
	}
	openMeteo := conditions.RateOpenMeteo(marine, weather)

	forecast := r.forecast.LocalForecast(ctx)
	if forecast == nil {
		r.metrics.FetchFailures.WithLabelValues("metservice").Inc()
	}
	metService := conditions.RateMetService(forecast)

	frame, ok := r.camera.Snapshot(ctx)
	if !ok {
		r.metrics.FetchFailures.WithLabelValues("webcam").Inc()
	}
	webcam := conditions.RateImage(frame)

	rep := Build(openMeteo, metService, webcam)

	r.metrics.SourceScore.WithLabelValues("openmeteo").Set(float64(rep.OpenMeteo.Score))
	r.metrics.SourceScore.WithLabelValues("metservice").Set(float64(rep.MetService.Score))
	r.metrics.SourceScore.WithLabelValues("webcam").Set(float64(rep.Webcam.Score))
	r.metrics.OverallScore.Set(float64(rep.Overall))

	if err := r.mailer.Send(ctx, Subject, rep.Render()); err != nil {
		// A failed email is not retried and does not block the next run.
		logger.Error("failed to send update email", "error", err)
	}

	r.metrics.RunsTotal.Inc()
	r.metrics.RunDuration.Observe(time.Since(start).Seconds())
	r.ready.Store(true)

	logger.Info("update run finished",
		"openmeteo_score", rep.OpenMeteo.Score,
		"metservice_score", rep.MetService.Score,
		"webcam_score", rep.Webcam.Score,
		"overall_score", rep.Overall,
		"duration", time.Since(start),
	)
	return rep
}
