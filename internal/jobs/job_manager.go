package jobs

import (
	"fmt"
	"log/slog"

	"partner/internal/core/application/usecases/commands"
	"partner/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderRefreshJob *OrderRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	fetchOrdersHandler commands.FetchOrdersCommandHandler,
	partnerID kernel.UUID,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderRefreshJob: NewOrderRefreshJob(fetchOrdersHandler, partnerID, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start order refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderRefreshJob.Stop()
}
