package services_test

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/domain/services"
)

func ExampleDispatcher_Dispatch() {
	at := time.Date(2026, 5, 5, 8, 30, 0, 0, time.UTC)

	item, _ := order.NewItem("SKU-7", 2, 450)
	o, _ := order.NewOrder(kernel.NewUUID(), "ORD-7", "Grace", "7 Harbour Rd",
		[]order.Item{item}, order.PriorityHigh, kernel.CenterSouth, at)
	_ = o.MarkReadyForDispatch(at)

	northDriver, _ := driver.NewDriver(kernel.NewUUID(), "Lin", "", "", kernel.CenterNorth, at)
	_, _ = northDriver.SetApproval(driver.ApprovalApproved)
	southDriver, _ := driver.NewDriver(kernel.NewUUID(), "Ravi", "", "", kernel.CenterSouth, at)
	_, _ = southDriver.SetApproval(driver.ApprovalApproved)
	van, _ := vehicle.NewVehicle(kernel.NewUUID(), "SO-12", "Van", 800, kernel.CenterSouth, at)

	dispatcher := services.NewDispatcher()

	_, err := dispatcher.Dispatch(services.Assignment{
		Order: o, Driver: northDriver, Vehicle: van, RequestedBy: "dispatcher-7",
	}, kernel.NewUUID(), at)
	fmt.Println(errors.Is(err, services.ErrDriverCenterMismatch), o.Status())

	d, err := dispatcher.Dispatch(services.Assignment{
		Order: o, Driver: southDriver, Vehicle: van, RequestedBy: "dispatcher-7",
	}, kernel.NewUUID(), at)
	fmt.Println(err, d.Status(), o.Status())

	// Output:
	// true ReadyForDispatch
	// <nil> Assigned Assigned
}
