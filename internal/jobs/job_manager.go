package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob         *OutboxRelayJob
	staleDeliveryReportJob *StaleDeliveryReportJob
}

// NewJobManager takes the already configured jobs.
func NewJobManager(outboxRelayJob *OutboxRelayJob, staleDeliveryReportJob *StaleDeliveryReportJob) *JobManager {
	return &JobManager{
		outboxRelayJob:         outboxRelayJob,
		staleDeliveryReportJob: staleDeliveryReportJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.staleDeliveryReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start stale delivery report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleDeliveryReportJob.Stop()
	jm.outboxRelayJob.Stop()
}

// WakeOutboxRelay asks the outbox relay for an immediate pass.
func (jm *JobManager) WakeOutboxRelay() {
	jm.outboxRelayJob.Wake()
}
