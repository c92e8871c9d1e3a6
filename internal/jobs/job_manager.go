package jobs

import (
	"fmt"
	"log/slog"

	"tracker/internal/core/streaming"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	streamMetricsJob *StreamMetricsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(registry *streaming.Registry, logger *slog.Logger) *JobManager {
	return &JobManager{
		streamMetricsJob: NewStreamMetricsJob(registry, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.streamMetricsJob.Start(); err != nil {
		return fmt.Errorf("failed to start stream metrics job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.streamMetricsJob.Stop()
}
