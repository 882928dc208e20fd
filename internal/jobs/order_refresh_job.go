package jobs

import (
	"context"
	"log/slog"

	"partner/internal/core/application/usecases/commands"
	"partner/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// OrderRefreshJob periodically re-fetches the partner's orders from the
// assignment service so the local projections converge on the service's
// truth even when individual operations failed or notifications were missed.
type OrderRefreshJob struct {
	handler   commands.FetchOrdersCommandHandler
	partnerID kernel.UUID
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderRefreshJob creates a new job for refreshing the order list.
// Uses FetchOrdersCommandHandler to replace the projections every five seconds.
func NewOrderRefreshJob(
	handler commands.FetchOrdersCommandHandler,
	partnerID kernel.UUID,
	logger *slog.Logger,
) *OrderRefreshJob {
	return &OrderRefreshJob{
		handler:   handler,
		partnerID: partnerID,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "order_refresh_job"),
	}
}

// Start begins the order refresh job to run every five seconds.
func (j *OrderRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewFetchOrdersCommand(j.partnerID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order refresh job misconfigured", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Transient fetch failures are expected; the next tick retries.
			j.logger.WarnContext(ctx, "Order refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order refresh job started (running every 5 seconds)")
	return nil
}

// Stop stops the order refresh job.
func (j *OrderRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order refresh job stopped")
}
