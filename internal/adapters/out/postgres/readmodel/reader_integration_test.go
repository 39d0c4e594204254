package readmodel_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/adapters/out/postgres/readmodel"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ReaderIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
	reader   *readmodel.Reader
}

func (suite *ReaderIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(database.DB)
	suite.reader = readmodel.NewReader(database.DB)
}

func (suite *ReaderIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate(context.Background()))
}

func (suite *ReaderIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *ReaderIntegrationTestSuite) assign(o *order.Order, drv *driver.Driver, vehicleID kernel.UUID, at time.Time) *delivery.Delivery {
	ctx := context.Background()
	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), drv.ID(), vehicleID, o.Center(), "dispatcher", "", at)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Assign(at))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))
	return d
}

func (suite *ReaderIntegrationTestSuite) TestAvailabilityIsComputedFromActiveDeliveries() {
	ctx := context.Background()
	busy := pgtest.Driver("Busy", kernel.CenterNorth, true)
	free := pgtest.Driver("Free", kernel.CenterNorth, true)
	pending := pgtest.Driver("Pending", kernel.CenterNorth, false)
	elsewhere := pgtest.Driver("Elsewhere", kernel.CenterSouth, true)
	inactive := pgtest.Driver("Inactive", kernel.CenterNorth, true)
	inactive.SetActive(false)
	veh := pgtest.Vehicle("N-1", kernel.CenterNorth)
	spare := pgtest.Vehicle("N-2", kernel.CenterNorth)
	o := pgtest.Order("ORD-1", kernel.CenterNorth, order.PriorityNormal, pgtest.Epoch, true)
	suite.Require().NoError(pgtest.Save(ctx, suite.factory, busy, free, pending, elsewhere, inactive, veh, spare, o))

	d := suite.assign(o, busy, veh.ID(), pgtest.Epoch)

	drivers, err := suite.reader.AvailableDrivers(ctx, kernel.CenterNorth)
	suite.Require().NoError(err)
	suite.Require().Len(drivers, 1)
	suite.Equal("Free", drivers[0].Name)

	vehicles, err := suite.reader.AvailableVehicles(ctx, kernel.CenterNorth)
	suite.Require().NoError(err)
	suite.Require().Len(vehicles, 1)
	suite.Equal("N-2", vehicles[0].Plate)

	suite.Require().NoError(d.AdvanceStatus(delivery.Failed, "", nil, pgtest.Epoch.Add(time.Hour)))
	suite.Require().NoError(suite.factory.Create().DeliveryRepository().Update(ctx, d))

	drivers, err = suite.reader.AvailableDrivers(ctx, kernel.CenterNorth)
	suite.Require().NoError(err)
	suite.Len(drivers, 2)

	empty, err := suite.reader.AvailableVehicles(ctx, kernel.CenterEast)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *ReaderIntegrationTestSuite) TestListDriversFilters() {
	ctx := context.Background()
	suite.Require().NoError(pgtest.Save(ctx, suite.factory,
		pgtest.Driver("Alice North", kernel.CenterNorth, true),
		pgtest.Driver("Bob North", kernel.CenterNorth, false),
		pgtest.Driver("Carol South", kernel.CenterSouth, true),
	))

	north := kernel.CenterNorth
	approved := driver.ApprovalApproved
	views, err := suite.reader.ListDrivers(ctx, queries.DriverFilter{Center: &north, ApprovalStatus: &approved})
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Equal("Alice North", views[0].Name)

	views, err = suite.reader.ListDrivers(ctx, queries.DriverFilter{Search: "south"})
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Equal("Carol South", views[0].Name)

	views, err = suite.reader.ListDrivers(ctx, queries.DriverFilter{Search: "%"})
	suite.Require().NoError(err)
	suite.Empty(views, "wildcards in the search term match literally")
}

func (suite *ReaderIntegrationTestSuite) TestReadyQueueOrdering() {
	ctx := context.Background()
	oldNormal := pgtest.Order("ORD-OLD", kernel.CenterEast, order.PriorityNormal, pgtest.Epoch, true)
	newHigh := pgtest.Order("ORD-HIGH", kernel.CenterEast, order.PriorityHigh, pgtest.Epoch.Add(time.Hour), true)
	newNormal := pgtest.Order("ORD-NEW", kernel.CenterEast, order.PriorityNormal, pgtest.Epoch.Add(2*time.Hour), true)
	notReady := pgtest.Order("ORD-PENDING", kernel.CenterEast, order.PriorityHigh, pgtest.Epoch, false)
	otherCenter := pgtest.Order("ORD-WEST", kernel.CenterWest, order.PriorityHigh, pgtest.Epoch, true)
	suite.Require().NoError(pgtest.Save(ctx, suite.factory, oldNormal, newHigh, newNormal, notReady, otherCenter))

	east := kernel.CenterEast
	views, err := suite.reader.ListReadyForDispatch(ctx, queries.ReadyOrderFilter{Center: &east})
	suite.Require().NoError(err)
	suite.Require().Len(views, 3)
	suite.Equal([]string{"ORD-HIGH", "ORD-OLD", "ORD-NEW"}, []string{views[0].Code, views[1].Code, views[2].Code})
	suite.Equal(int64(2500), views[0].TotalMinor)

	to := pgtest.Epoch.Add(30 * time.Minute)
	views, err = suite.reader.ListReadyForDispatch(ctx, queries.ReadyOrderFilter{Center: &east, To: &to})
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Equal("ORD-OLD", views[0].Code)
}

func (suite *ReaderIntegrationTestSuite) TestDeliveriesPageAndDetails() {
	ctx := context.Background()
	drv1 := pgtest.Driver("Zed Runner", kernel.CenterCentral, true)
	drv2 := pgtest.Driver("Amy Rider", kernel.CenterCentral, true)
	veh1 := pgtest.Vehicle("C-1", kernel.CenterCentral)
	veh2 := pgtest.Vehicle("C-2", kernel.CenterCentral)
	o1 := pgtest.Order("ORD-C1", kernel.CenterCentral, order.PriorityNormal, pgtest.Epoch, true)
	o2 := pgtest.Order("ORD-C2", kernel.CenterCentral, order.PriorityNormal, pgtest.Epoch, true)
	suite.Require().NoError(pgtest.Save(ctx, suite.factory, drv1, drv2, veh1, veh2, o1, o2))

	first := suite.assign(o1, drv1, veh1.ID(), pgtest.Epoch)
	suite.assign(o2, drv2, veh2.ID(), pgtest.Epoch.Add(time.Minute))

	page, err := suite.reader.ListDeliveries(ctx, queries.DeliveryFilter{Page: 1, Limit: 1})
	suite.Require().NoError(err)
	suite.Equal(int64(2), page.Total)
	suite.Require().Len(page.Data, 1)
	suite.Equal("ORD-C2", page.Data[0].Order.Code, "newest assignment first")

	page, err = suite.reader.ListDeliveries(ctx, queries.DeliveryFilter{Page: 1, Limit: 10, Search: "zed"})
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Require().Len(page.Data, 1)
	suite.Equal("Zed Runner", page.Data[0].Driver.Name)
	suite.Equal("C-1", page.Data[0].Vehicle.Plate)
	suite.Equal(order.Assigned.String(), page.Data[0].Order.Status)

	view, err := suite.reader.GetDelivery(ctx, first.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Assigned.String(), view.Status)
	suite.Equal("dispatcher", view.AssignedBy)

	timeline, err := suite.reader.GetTimeline(ctx, first.ID())
	suite.Require().NoError(err)
	suite.Require().Len(timeline, 1)
	suite.Equal(1, timeline[0].Sequence)
	suite.Equal("Assigned", timeline[0].Status)

	_, err = suite.reader.GetDelivery(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.reader.GetTimeline(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReaderIntegrationTestSuite) TestListStale() {
	ctx := context.Background()
	drv := pgtest.Driver("Sam", kernel.CenterSouth, true)
	veh := pgtest.Vehicle("S-1", kernel.CenterSouth)
	o := pgtest.Order("ORD-S", kernel.CenterSouth, order.PriorityNormal, pgtest.Epoch, true)
	suite.Require().NoError(pgtest.Save(ctx, suite.factory, drv, veh, o))
	d := suite.assign(o, drv, veh.ID(), pgtest.Epoch)

	stale, err := suite.reader.ListStale(ctx, pgtest.Epoch.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(stale, 1)
	suite.True(d.ID().IsEqual(stale[0].ID))

	stale, err = suite.reader.ListStale(ctx, pgtest.Epoch)
	suite.Require().NoError(err)
	suite.Empty(stale)
}

func TestReaderIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReaderIntegrationTestSuite))
}
