package outboxrepo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/outboxrepo"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
)

type OutboxIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	outbox   *outboxrepo.GormOutboxRepository
	relay    *outboxrepo.RelayStore
}

func (suite *OutboxIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OutboxIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate(context.Background()))
	suite.outbox = outboxrepo.NewGormOutboxRepository(suite.database.DB)
	suite.relay = outboxrepo.NewRelayStore(suite.database.DB)
}

func (suite *OutboxIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *OutboxIntegrationTestSuite) addEvents(n int) []event.Event {
	events := make([]event.Event, 0, n)
	for i := range n {
		e, err := event.New(event.DeliveryAssigned, "delivery", kernel.NewUUID(),
			map[string]int{"n": i}, pgtest.Epoch.Add(time.Duration(i)*time.Second))
		suite.Require().NoError(err)
		events = append(events, e)
	}
	suite.Require().NoError(suite.outbox.Add(context.Background(), events...))
	return events
}

func (suite *OutboxIntegrationTestSuite) TestRelayPublishesOldestFirstAndMarksProcessed() {
	ctx := context.Background()
	stored := suite.addEvents(3)

	var published []event.Event
	stats, err := suite.relay.Relay(ctx, 10, func(_ context.Context, e event.Event) error {
		published = append(published, e)
		return nil
	})

	suite.Require().NoError(err)
	suite.Equal(3, stats.Published)
	suite.Equal(0, stats.Failed)
	suite.Require().Len(published, 3)
	for i := range stored {
		suite.True(stored[i].ID().IsEqual(published[i].ID()))
		suite.JSONEq(string(stored[i].Payload()), string(published[i].Payload()))
	}

	pending, err := suite.relay.Pending(ctx)
	suite.Require().NoError(err)
	suite.Zero(pending)
}

func (suite *OutboxIntegrationTestSuite) TestFailedPublishStaysPending() {
	ctx := context.Background()
	stored := suite.addEvents(1)

	stats, err := suite.relay.Relay(ctx, 10, func(context.Context, event.Event) error {
		return errors.New("broker unavailable")
	})
	suite.Require().NoError(err)
	suite.Equal(1, stats.Failed)

	var row outboxrepo.OutboxMessageDTO
	suite.Require().NoError(suite.database.DB.First(&row, "id = ?", stored[0].ID().Bytes()).Error)
	suite.Equal(1, row.Attempts)
	suite.Equal("broker unavailable", row.LastError)
	suite.Nil(row.ProcessedAt)

	stats, err = suite.relay.Relay(ctx, 10, func(context.Context, event.Event) error { return nil })
	suite.Require().NoError(err)
	suite.Equal(1, stats.Published)
}

func (suite *OutboxIntegrationTestSuite) TestConcurrentRelaysNeverShareEvents() {
	ctx := context.Background()
	suite.addEvents(20)

	var (
		mu   sync.Mutex
		seen = make(map[string]int)
		wg   sync.WaitGroup
	)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.relay.Relay(ctx, 20, func(_ context.Context, e event.Event) error {
				mu.Lock()
				seen[e.ID().String()]++
				mu.Unlock()
				time.Sleep(5 * time.Millisecond)
				return nil
			})
			suite.NoError(err)
		}()
	}
	wg.Wait()

	suite.Len(seen, 20)
	for id, count := range seen {
		suite.Equal(1, count, "event %s published more than once", id)
	}
}

func (suite *OutboxIntegrationTestSuite) TestInsertNotifiesListeners() {
	var count int64
	suite.Require().NoError(suite.database.DB.Raw(
		"SELECT count(*) FROM pg_trigger WHERE tgname = 'outbox_messages_notify'").Scan(&count).Error)
	suite.Equal(int64(1), count)
}

func TestOutboxIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxIntegrationTestSuite))
}
