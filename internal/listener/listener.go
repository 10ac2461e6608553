package listener

import (
	"context"
	"log/slog"
	"time"

	"toramboss/internal/config"
	"toramboss/internal/pipeline"
	"toramboss/internal/storage"
)

// Runner is one full scrape; *pipeline.ScrapeService satisfies it.
type Runner interface {
	Run(ctx context.Context) (pipeline.RunResult, error)
}

// Service re-runs the scrape every WATCH_INTERVAL_MIN minutes until ctx ends.
// A failed cycle is logged and the loop carries on; each cycle is still
// all-or-nothing on its own.
type Service struct {
	runner   Runner
	interval time.Duration
	log      *slog.Logger
}

func NewService(db *storage.DB, cfg config.Config, log *slog.Logger) *Service {
	return NewServiceWithRunner(pipeline.NewScrapeService(db, cfg, log), time.Duration(cfg.WatchIntervalMin)*time.Minute, log)
}

func NewServiceWithRunner(runner Runner, interval time.Duration, log *slog.Logger) *Service {
	if interval <= 0 {
		interval = time.Hour
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{runner: runner, interval: interval, log: log}
}

func (s *Service) Run(ctx context.Context) error {
	for {
		res, err := s.runner.Run(ctx)
		if err != nil {
			s.log.Error("watch cycle failed", "err", err)
		} else {
			s.log.Info("watch cycle done", "traceId", res.TraceID, "pages", res.Pages, "records", res.Records)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.interval):
		}
	}
}
