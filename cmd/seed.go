package cmd

import (
	"context"
	"fmt"
	"io"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/jaswdr/faker"
	"github.com/schollz/progressbar/v3"
)

// SeedOptions sizes the demo data created per distribution center.
type SeedOptions struct {
	Drivers  int
	Vehicles int
	Orders   int
	Centers  []kernel.Center
	Progress io.Writer
}

type SeedReport struct {
	Drivers  int
	Vehicles int
	Orders   int
	Ready    int
}

// Seed fills the store with approved drivers, vehicles and orders; roughly two
// thirds of the orders are marked ready for dispatch.
func (c *CompositionRoot) Seed(ctx context.Context, opts SeedOptions) (SeedReport, error) {
	centers := opts.Centers
	if len(centers) == 0 {
		centers = kernel.Centers()
	}
	out := opts.Progress
	if out == nil {
		out = io.Discard
	}

	total := len(centers) * (opts.Drivers + opts.Vehicles + opts.Orders)
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("seeding"),
		progressbar.OptionShowCount(),
	)

	s := seeder{
		fake:          faker.New(),
		createDriver:  c.CreateCreateDriverCommandHandler(),
		approveDriver: c.CreateSetDriverApprovalCommandHandler(),
		createVehicle: c.CreateCreateVehicleCommandHandler(),
		createOrder:   c.CreateCreateOrderCommandHandler(),
		markReady:     c.CreateMarkOrderReadyCommandHandler(),
	}

	var report SeedReport
	step := func(err error) error {
		if err != nil {
			return err
		}
		return bar.Add(1)
	}

	for _, center := range centers {
		for range opts.Drivers {
			if err := step(s.driver(ctx, center)); err != nil {
				return report, fmt.Errorf("seed driver: %w", err)
			}
			report.Drivers++
		}
		for range opts.Vehicles {
			if err := step(s.vehicle(ctx, center)); err != nil {
				return report, fmt.Errorf("seed vehicle: %w", err)
			}
			report.Vehicles++
		}
		for i := range opts.Orders {
			ready := i%3 != 2
			if err := step(s.order(ctx, center, ready)); err != nil {
				return report, fmt.Errorf("seed order: %w", err)
			}
			report.Orders++
			if ready {
				report.Ready++
			}
		}
	}

	if err := bar.Finish(); err != nil {
		return report, err
	}
	_, _ = fmt.Fprintln(out)
	return report, nil
}

type seeder struct {
	fake          faker.Faker
	createDriver  commands.CreateDriverCommandHandler
	approveDriver commands.SetDriverApprovalCommandHandler
	createVehicle commands.CreateVehicleCommandHandler
	createOrder   commands.CreateOrderCommandHandler
	markReady     commands.MarkOrderReadyCommandHandler
}

func (s seeder) driver(ctx context.Context, center kernel.Center) error {
	cmd, err := commands.NewCreateDriverCommand(
		s.fake.Person().Name(),
		s.fake.Internet().Email(),
		s.fake.Phone().Number(),
		center.String(),
	)
	if err != nil {
		return err
	}
	if err = s.createDriver.Handle(ctx, cmd); err != nil {
		return err
	}

	approval, err := commands.NewSetDriverApprovalCommand(cmd.DriverID(), "Approved")
	if err != nil {
		return err
	}
	return s.approveDriver.Handle(ctx, approval)
}

func (s seeder) vehicle(ctx context.Context, center kernel.Center) error {
	cmd, err := commands.NewCreateVehicleCommand(
		s.fake.Car().Plate(),
		s.fake.Car().Maker()+" "+s.fake.Car().Model(),
		s.fake.IntBetween(300, 1500),
		center.String(),
	)
	if err != nil {
		return err
	}
	return s.createVehicle.Handle(ctx, cmd)
}

func (s seeder) order(ctx context.Context, center kernel.Center, ready bool) error {
	items := make([]commands.OrderItemInput, s.fake.IntBetween(1, 4))
	for i := range items {
		items[i] = commands.OrderItemInput{
			ProductRef:     fmt.Sprintf("SKU-%05d", s.fake.IntBetween(1, 99999)),
			Quantity:       s.fake.IntBetween(1, 5),
			UnitPriceMinor: int64(s.fake.IntBetween(199, 9999)),
		}
	}

	priority := "Normal"
	if s.fake.IntBetween(1, 5) == 1 {
		priority = "High"
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		"",
		s.fake.Person().Name(),
		s.fake.Address().Address(),
		priority,
		center.String(),
		items,
	)
	if err != nil {
		return err
	}
	if _, err = s.createOrder.Handle(ctx, cmd); err != nil {
		return err
	}
	if !ready {
		return nil
	}

	markReady, err := commands.NewMarkOrderReadyCommand(cmd.OrderID())
	if err != nil {
		return err
	}
	return s.markReady.Handle(ctx, markReady)
}
