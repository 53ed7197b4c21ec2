package jobs

import (
	"context"
	"fmt"
	"time"

	"salesorders/internal/core/application/usecases/commands"
	"salesorders/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const purgeJobName = "purge_deleted_orders"

// PurgeHandler removes one batch of soft-deleted orders.
type PurgeHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeDeletedOrdersCommand) (int, error)
}

// PurgeConfig controls when and how much the purge job deletes.
type PurgeConfig struct {
	// Schedule is a cron expression with a leading seconds field.
	Schedule string
	// Retention is how long a soft-deleted order is kept before it is purged.
	Retention time.Duration
	// BatchSize is the number of orders removed per transaction.
	BatchSize int
}

// PurgeDeletedOrdersJob periodically hard-deletes orders (and their items)
// that were soft-deleted more than Retention ago.
type PurgeDeletedOrdersJob struct {
	handler PurgeHandler
	config  PurgeConfig
	cron    *cron.Cron
	now     func() time.Time
	logger  *zap.Logger
}

// NewPurgeDeletedOrdersJob creates the purge job. Runs never overlap: a run
// that is still going when the next one is due makes the scheduler skip it.
func NewPurgeDeletedOrdersJob(handler PurgeHandler, config PurgeConfig, logger *zap.Logger) *PurgeDeletedOrdersJob {
	return &PurgeDeletedOrdersJob{
		handler: handler,
		config:  config,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		now:    time.Now,
		logger: logger.With(zap.String("component", purgeJobName+"_job")),
	}
}

// Start schedules the job and starts the scheduler.
func (j *PurgeDeletedOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.Error("Purge deleted orders job failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.config.Schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Purge deleted orders job started",
		zap.String("schedule", j.config.Schedule),
		zap.Duration("retention", j.config.Retention),
	)
	return nil
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *PurgeDeletedOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Purge deleted orders job stopped")
}

// RunOnce purges batch after batch until a batch comes back short, and
// returns the number of orders removed.
func (j *PurgeDeletedOrdersJob) RunOnce(ctx context.Context) (int, error) {
	start := j.now()
	cutoff := start.Add(-j.config.Retention)

	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return total, j.finish(start, total, err)
		}

		cmd, err := commands.NewPurgeDeletedOrdersCommand(cutoff, j.config.BatchSize)
		if err != nil {
			return total, j.finish(start, total, err)
		}

		purged, err := j.handler.Handle(ctx, cmd)
		total += purged
		if err != nil {
			return total, j.finish(start, total, err)
		}

		if purged < j.config.BatchSize {
			return total, j.finish(start, total, nil)
		}
	}
}

func (j *PurgeDeletedOrdersJob) finish(start time.Time, purged int, err error) error {
	metrics.AddPurgedOrders(purged)
	metrics.RecordJobRun(purgeJobName, j.now().Sub(start), err == nil)

	if purged > 0 {
		j.logger.Info("Purged deleted orders", zap.Int("count", purged))
	}
	return err
}
