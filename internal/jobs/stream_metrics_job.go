package jobs

import (
	"context"
	"log/slog"

	"tracker/internal/core/streaming"
	"tracker/internal/metrics"

	"github.com/robfig/cron/v3"
)

// StreamMetricsJob periodically samples the subscription registry.
// The sampled count feeds the active-streams gauge consumed by the
// dashboard and ops alerting.
type StreamMetricsJob struct {
	registry *streaming.Registry
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStreamMetricsJob creates a job that samples the registry every
// five seconds.
func NewStreamMetricsJob(registry *streaming.Registry, logger *slog.Logger) *StreamMetricsJob {
	return &StreamMetricsJob{
		registry: registry,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stream_metrics_job"),
	}
}

// Start begins the sampling schedule.
func (j *StreamMetricsJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		count := j.registry.CountAll()
		metrics.ActiveStreams.Set(float64(count))
		j.logger.DebugContext(context.Background(), "Sampled live streams", "count", count)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stream metrics job started (sampling every five seconds)")
	return nil
}

// Stop stops the sampling schedule.
func (j *StreamMetricsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stream metrics job stopped")
}
