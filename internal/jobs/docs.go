// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled) and
// wrapped with cron.SkipIfStillRunning so a slow pass never overlaps the next.
//
// # Available Jobs
//
// 1. OutboxRelayJob - publishes pending outbox events through the configured
// EventPublisher. Besides its schedule it can be woken, which the serve
// command does on every PostgreSQL NOTIFY for the outbox channel.
// 2. StaleDeliveryReportJob - logs open deliveries with no timeline activity for
// the configured idle time and exports their count as a gauge. It is report-only.
//
// # Usage
//
//	relay := jobs.NewOutboxRelayJob(relayStore, publisher, 100, "@every 5s", m, logger)
//	stale := jobs.NewStaleDeliveryReportJob(staleHandler, 2*time.Hour, "0 */5 * * * *", m, logger)
//	jobManager := jobs.NewJobManager(relay, stale)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed publish leaves the event pending with its attempt count and last
// error recorded; the next pass retries it
// - Failed job starts will stop any already running jobs
package jobs
