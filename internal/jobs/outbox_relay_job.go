package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dispatch/internal/core/ports"
	"dispatch/internal/metrics"

	"github.com/robfig/cron/v3"
)

const relayTimeout = 30 * time.Second

// OutboxRelayJob drains pending outbox events into the publisher on a cron
// schedule. Wake triggers an extra pass, for example on a NOTIFY from the store.
type OutboxRelayJob struct {
	store     ports.OutboxRelayStore
	publisher ports.EventPublisher
	batchSize int
	schedule  string
	metrics   *metrics.Metrics
	cron      *cron.Cron
	logger    *slog.Logger

	mu   sync.Mutex
	wake chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
}

func NewOutboxRelayJob(
	store ports.OutboxRelayStore,
	publisher ports.EventPublisher,
	batchSize int,
	schedule string,
	m *metrics.Metrics,
	logger *slog.Logger,
) *OutboxRelayJob {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &OutboxRelayJob{
		store:     store,
		publisher: publisher,
		batchSize: batchSize,
		schedule:  schedule,
		metrics:   m,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
}

// Start schedules the relay and begins serving wake-ups.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.tick); err != nil {
		return err
	}

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		for {
			select {
			case <-j.done:
				return
			case <-j.wake:
				j.tick()
			}
		}
	}()

	j.cron.Start()
	j.logger.Info("outbox relay job started", "schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// Stop waits for a running pass to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	close(j.done)
	j.wg.Wait()
	j.logger.Info("outbox relay job stopped")
}

// Wake requests a pass without blocking. Requests made while one is queued
// are merged.
func (j *OutboxRelayJob) Wake() {
	select {
	case j.wake <- struct{}{}:
	default:
	}
}

func (j *OutboxRelayJob) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), relayTimeout)
	defer cancel()

	if _, err := j.RunOnce(ctx); err != nil {
		j.logger.ErrorContext(ctx, "outbox relay failed", "error", err)
	}
}

// RunOnce relays batches until a batch comes back short or an event fails.
// Failed events stay pending and are retried on the next pass.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) (ports.RelayStats, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	var total ports.RelayStats
	for {
		stats, err := j.store.Relay(ctx, j.batchSize, j.publisher.Publish)
		total.Published += stats.Published
		total.Failed += stats.Failed
		j.metrics.ObserveOutbox(stats.Published, stats.Failed)
		if err != nil {
			return total, err
		}
		if stats.Failed > 0 || stats.Published < j.batchSize {
			break
		}
	}

	if total.Failed > 0 {
		j.logger.WarnContext(ctx, "outbox events left pending", "published", total.Published, "failed", total.Failed)
	} else if total.Published > 0 {
		j.logger.DebugContext(ctx, "outbox events published", "published", total.Published)
	}
	return total, nil
}
