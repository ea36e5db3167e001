package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"freshdispatch/internal/core/application/usecases/commands"
	"freshdispatch/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// Defaults of the rebroadcast job.
const (
	DefaultRebroadcastSchedule = "0 * * * * *"
	DefaultRebroadcastAge      = 5 * time.Minute
	DefaultRebroadcastBatch    = 100
)

type dispatchableLister interface {
	ListDispatchableBefore(ctx context.Context, cutoff time.Time, limit int) ([]*order.Order, error)
}

// RebroadcastConfig tunes ReadyOrderRebroadcastJob. Zero fields take the defaults.
type RebroadcastConfig struct {
	Schedule string
	Age      time.Duration
	Batch    int
}

func (c RebroadcastConfig) withDefaults() RebroadcastConfig {
	if c.Schedule == "" {
		c.Schedule = DefaultRebroadcastSchedule
	}
	if c.Age <= 0 {
		c.Age = DefaultRebroadcastAge
	}
	if c.Batch <= 0 {
		c.Batch = DefaultRebroadcastBatch
	}
	return c
}

// ReadyOrderRebroadcastJob re-announces door-delivery orders that have been
// ready and unassigned for longer than the configured age.
type ReadyOrderRebroadcastJob struct {
	orders      dispatchableLister
	broadcaster commands.CourierBroadcaster
	cfg         RebroadcastConfig
	now         func() time.Time
	cron        *cron.Cron
	logger      *slog.Logger
}

func NewReadyOrderRebroadcastJob(
	orders dispatchableLister,
	broadcaster commands.CourierBroadcaster,
	cfg RebroadcastConfig,
	logger *slog.Logger,
) *ReadyOrderRebroadcastJob {
	return &ReadyOrderRebroadcastJob{
		orders:      orders,
		broadcaster: broadcaster,
		cfg:         cfg.withDefaults(),
		now:         time.Now,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "ready_order_rebroadcast_job"),
	}
}

// Start schedules the job.
func (j *ReadyOrderRebroadcastJob) Start() error {
	_, err := j.cron.AddFunc(j.cfg.Schedule, func() {
		if _, runErr := j.Run(context.Background()); runErr != nil {
			j.logger.Error("Ready order rebroadcast failed", "error", runErr)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid rebroadcast schedule %q: %w", j.cfg.Schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Ready order rebroadcast job started", "schedule", j.cfg.Schedule, "age", j.cfg.Age.String())
	return nil
}

// Run performs one pass and returns how many orders were rebroadcast.
// A failure on one order is logged and does not stop the pass.
func (j *ReadyOrderRebroadcastJob) Run(ctx context.Context) (int, error) {
	stale, err := j.orders.ListDispatchableBefore(ctx, j.now().Add(-j.cfg.Age), j.cfg.Batch)
	if err != nil {
		return 0, err
	}

	rebroadcast := 0
	for _, o := range stale {
		cmd, cmdErr := commands.NewNotifyNearbyCouriersCommand(o.ID())
		if cmdErr != nil {
			return rebroadcast, cmdErr
		}
		notified, handleErr := j.broadcaster.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.WarnContext(ctx, "Failed to rebroadcast order", "order_id", o.ID().String(), "error", handleErr)
			continue
		}
		rebroadcast++
		j.logger.DebugContext(ctx, "Order rebroadcast", "order_id", o.ID().String(), "couriers_notified", notified)
	}
	return rebroadcast, nil
}

// Stop stops the scheduler and waits for a running pass.
func (j *ReadyOrderRebroadcastJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Ready order rebroadcast job stopped")
}
