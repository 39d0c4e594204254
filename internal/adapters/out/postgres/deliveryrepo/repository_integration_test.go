package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *deliveryrepo.GormDeliveryRepository
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate(context.Background()))
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.database.DB)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

// newDelivery stores the referenced order, driver and vehicle and returns an
// unsaved Assigned delivery.
func (suite *DeliveryRepositoryIntegrationTestSuite) newDelivery(code string) *delivery.Delivery {
	ctx := context.Background()
	o := pgtest.Order(code, kernel.CenterWest, order.PriorityNormal, pgtest.Epoch, true)
	drv := pgtest.Driver("Wes", kernel.CenterWest, true)
	veh := pgtest.Vehicle("W-"+code, kernel.CenterWest)
	suite.Require().NoError(pgtest.Save(ctx, postgresadapter.NewGormUnitOfWorkFactory(suite.database.DB), o, drv, veh))

	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), drv.ID(), veh.ID(), kernel.CenterWest,
		"dispatcher-1", "leave at door", pgtest.Epoch)
	suite.Require().NoError(err)
	return d
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	d := suite.newDelivery("ORD-1")

	suite.Require().NoError(suite.repository.Add(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Assigned, loaded.Status())
	suite.Equal("dispatcher-1", loaded.AssignedBy())
	suite.Equal("leave at door", loaded.Notes())
	suite.Equal(kernel.CenterWest, loaded.Center())
	suite.Require().Len(loaded.Timeline(), 1)
	suite.Equal(delivery.EventStatusChanged, loaded.Timeline()[0].Kind())
	suite.Nil(loaded.LastKnownPosition())
	suite.True(loaded.Proof().IsEmpty())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdateAppendsTimelineAndPersistsState() {
	ctx := context.Background()
	d := suite.newDelivery("ORD-2")
	suite.Require().NoError(suite.repository.Add(ctx, d))

	at := pgtest.Epoch.Add(10 * time.Minute)
	point, err := kernel.NewGeoPoint(52.52, 13.405)
	suite.Require().NoError(err)
	speed := 12.5
	pos, err := delivery.NewPosition(point, &speed, nil, at)
	suite.Require().NoError(err)

	suite.Require().NoError(d.AdvanceStatus(delivery.PickedUp, "picked", &point, at))
	_, sampled, err := d.RecordPosition(pos, at, time.Minute)
	suite.Require().NoError(err)
	suite.True(sampled)
	suite.Require().NoError(d.AttachProof("https://cdn.example.com/p.jpg", "", at))
	d.SetVerification(true, at)
	suite.Require().NoError(suite.repository.Update(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.PickedUp, loaded.Status())
	suite.Require().Len(loaded.Timeline(), 3)
	suite.Equal(2, loaded.Timeline()[1].Sequence())
	suite.Equal(delivery.EventPositionSampled, loaded.Timeline()[2].Kind())
	suite.Require().NotNil(loaded.Timeline()[1].Location())
	suite.InDelta(52.52, loaded.Timeline()[1].Location().Lat(), 1e-9)

	suite.Require().NotNil(loaded.LastKnownPosition())
	suite.InDelta(13.405, loaded.LastKnownPosition().Point().Lng(), 1e-9)
	suite.Require().NotNil(loaded.LastKnownPosition().Speed())
	suite.Nil(loaded.LastKnownPosition().Heading())
	suite.Equal("https://cdn.example.com/p.jpg", loaded.Proof().PhotoURL())
	suite.True(loaded.IsVerified())
	suite.True(at.Equal(loaded.LastActivityAt()))

	suite.Require().NoError(suite.repository.Update(ctx, loaded), "re-saving stored events is idempotent")
	again, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Len(again.Timeline(), 3)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestActiveForDriverAndVehicle() {
	ctx := context.Background()
	d := suite.newDelivery("ORD-3")
	suite.Require().NoError(suite.repository.Add(ctx, d))

	busy, err := suite.repository.ActiveForDriver(ctx, d.DriverID())
	suite.Require().NoError(err)
	suite.Require().NotNil(busy)
	suite.True(d.ID().IsEqual(*busy))

	free, err := suite.repository.ActiveForVehicle(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Nil(free)

	suite.Require().NoError(d.AdvanceStatus(delivery.Failed, "flat tire", nil, pgtest.Epoch.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	busy, err = suite.repository.ActiveForVehicle(ctx, d.VehicleID())
	suite.Require().NoError(err)
	suite.Nil(busy, "terminal deliveries release their resources")
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetUnknownDelivery() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
