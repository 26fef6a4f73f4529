// Package scheduler triggers the rating run on a daily or weekly cadence.
//
// The loop is a cooperative poller: it wakes on a short fixed interval,
// compares the clock against the next due slot, and invokes the run
// synchronously when due. At most one run fires per slot, however late the
// tick lands.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"spearo/internal/config"
	"spearo/internal/observability"
	"spearo/internal/report"
)

const (
	defaultSendHour   = 7
	defaultSendMinute = 0
)

// Task is the work executed at each scheduled slot.
type Task interface {
	RunOnce(ctx context.Context) report.Report
}

// Scheduler drives a Task on the configured cadence.
type Scheduler struct {
	task         Task
	clock        clockwork.Clock
	frequency    string
	sendHour     int
	sendMinute   int
	pollInterval time.Duration
	logger       *slog.Logger
	metrics      *observability.Metrics
}

// New creates a Scheduler from configuration. An unparseable SEND_TIME
// falls back to 07:00; cadence normalization already happened in config.
func New(task Task, cfg *config.Config, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Scheduler {
	hour, minute := parseSendTime(cfg.SendTime)
	return &Scheduler{
		task:         task,
		clock:        clock,
		frequency:    cfg.Frequency,
		sendHour:     hour,
		sendMinute:   minute,
		pollInterval: cfg.PollInterval,
		logger:       logger,
		metrics:      metrics,
	}
}

// NextRun returns the first scheduled slot strictly after now, in now's
// location. Daily runs fire every day at the send time; weekly runs fire
// on Fridays.
func (s *Scheduler) NextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.sendHour, s.sendMinute, 0, 0, now.Location())

	period := 1
	if s.frequency == config.FrequencyWeekly {
		period = 7
		for next.Weekday() != time.Friday {
			next = next.AddDate(0, 0, 1)
		}
	}
	if !next.After(now) {
		next = next.AddDate(0, 0, period)
	}
	return next
}

// Run executes the polling loop until the context is cancelled. Runs are
// invoked synchronously; a slow run simply delays that slot's email.
func (s *Scheduler) Run(ctx context.Context) error {
	s.metrics.SchedulerRunning.Set(1)
	defer s.metrics.SchedulerRunning.Set(0)

	next := s.NextRun(s.clock.Now())
	s.logger.Info("scheduler started",
		"frequency", s.frequency,
		"poll_interval", s.pollInterval,
		"next_run", next,
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopping", "reason", ctx.Err())
			return nil
		case <-s.clock.After(s.pollInterval):
		}

		now := s.clock.Now()
		if now.Before(next) {
			continue
		}

		s.task.RunOnce(ctx)
		next = s.NextRun(s.clock.Now())
		s.logger.Info("run complete", "next_run", next)
	}
}

func parseSendTime(v string) (hour, minute int) {
	parsed, err := time.Parse("15:04", v)
	if err != nil {
		return defaultSendHour, defaultSendMinute
	}
	return parsed.Hour(), parsed.Minute()
}
