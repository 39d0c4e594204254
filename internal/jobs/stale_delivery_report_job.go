package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/metrics"

	"github.com/robfig/cron/v3"
)

// StaleDeliveryReportJob reports open deliveries whose timeline has been
// silent for longer than idleFor. It never changes a delivery.
type StaleDeliveryReportJob struct {
	handler  queries.ListStaleDeliveriesQueryHandler
	idleFor  time.Duration
	schedule string
	metrics  *metrics.Metrics
	cron     *cron.Cron
	now      func() time.Time
	logger   *slog.Logger
}

func NewStaleDeliveryReportJob(
	handler queries.ListStaleDeliveriesQueryHandler,
	idleFor time.Duration,
	schedule string,
	m *metrics.Metrics,
	logger *slog.Logger,
) *StaleDeliveryReportJob {
	return &StaleDeliveryReportJob{
		handler:  handler,
		idleFor:  idleFor,
		schedule: schedule,
		metrics:  m,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		now:      time.Now,
		logger:   logger.With("component", "stale_delivery_report_job"),
	}
}

func (j *StaleDeliveryReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "stale delivery report failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("stale delivery report job started", "schedule", j.schedule, "idle_for", j.idleFor)
	return nil
}

func (j *StaleDeliveryReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("stale delivery report job stopped")
}

// RunOnce logs and returns the stale deliveries as of now.
func (j *StaleDeliveryReportJob) RunOnce(ctx context.Context) ([]queries.StaleDeliveryView, error) {
	now := j.now()
	query, err := queries.NewListStaleDeliveriesQuery(now, j.idleFor)
	if err != nil {
		return nil, err
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	j.metrics.SetStaleDeliveries(len(stale))
	for _, d := range stale {
		j.logger.WarnContext(ctx, "stale delivery",
			"delivery_id", d.ID.String(),
			"order_id", d.OrderID.String(),
			"driver_id", d.DriverID.String(),
			"center", d.Center,
			"status", d.Status,
			"idle", now.Sub(d.LastActivityAt).Round(time.Second),
		)
	}
	return stale, nil
}
