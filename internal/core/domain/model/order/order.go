package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemsAreRequired is returned for an order without lines.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root of the order pipeline. Intake creates it as
// Pending; inventory clearance moves it to ReadyForDispatch; the assignment
// engine and the delivery lifecycle drive it to a terminal status.
//
// Order follows these invariants:
//   - Must have a valid identifier and a non-empty unique code
//   - Must have at least one item; the total is always the sum of the items
//   - The center is fixed at creation
//   - Status only changes through the transition table
type Order struct {
	id           kernel.UUID
	code         string
	customerName string
	address      string
	items        []Item
	priority     Priority
	center       kernel.Center
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
	completedAt  *time.Time
	guard        guard.ConstructorGuard
}

// NewOrder creates a Pending order.
//
// Example:
//
//	item, _ := order.NewItem("SKU-1", 2, 1250)
//	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1", "Ada", "1 Main St",
//	    []order.Item{item}, order.PriorityHigh, kernel.CenterNorth, time.Now())
func NewOrder(
	id kernel.UUID,
	code string,
	customerName string,
	address string,
	items []Item,
	priority Priority,
	center kernel.Center,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: createdAt.UTC(),
		updatedAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setCustomerName(customerName),
		o.setAddress(address),
		o.setItems(items),
		o.setPriority(priority),
		o.setCenter(center),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an Order from persisted state.
func RestoreOrder(
	id kernel.UUID,
	code string,
	customerName string,
	address string,
	items []Item,
	priority Priority,
	center kernel.Center,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	completedAt *time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setCustomerName(customerName),
		o.setAddress(address),
		o.setItems(items),
		o.setPriority(priority),
		o.setCenter(center),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Code() string {
	return o.code
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) Address() string {
	return o.address
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalMinor is the sum of quantity × unit price over all items.
func (o *Order) TotalMinor() int64 {
	var total int64
	for _, item := range o.items {
		total += item.SubtotalMinor()
	}
	return total
}

func (o *Order) Priority() Priority {
	return o.priority
}

func (o *Order) Center() kernel.Center {
	return o.center
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CompletedAt is set once the order is Delivered.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// IsDispatchable reports whether the assignment engine may bind the order.
func (o *Order) IsDispatchable() bool {
	return o.status == ReadyForDispatch
}

// MarkReadyForDispatch moves a Pending order to ReadyForDispatch.
func (o *Order) MarkReadyForDispatch(now time.Time) error {
	return o.transition(ReadyForDispatch, now)
}

// Assign moves a ReadyForDispatch order to Assigned.
func (o *Order) Assign(now time.Time) error {
	return o.transition(Assigned, now)
}

// StartTransit moves an Assigned order to InTransit. Calling it on an order
// that is already InTransit is a no-op, so both PickedUp and InTransit
// deliveries may propagate.
func (o *Order) StartTransit(now time.Time) error {
	if o.status == InTransit {
		return nil
	}
	return o.transition(InTransit, now)
}

// Deliver completes the order.
func (o *Order) Deliver(now time.Time) error {
	if err := o.transition(Delivered, now); err != nil {
		return err
	}
	completedAt := now.UTC()
	o.completedAt = &completedAt
	return nil
}

func (o *Order) Fail(now time.Time) error {
	return o.transition(Failed, now)
}

// Cancel is allowed while the order has not been assigned.
func (o *Order) Cancel(now time.Time) error {
	return o.transition(Cancelled, now)
}

func (o *Order) transition(next Status, now time.Time) error {
	if !o.status.CanTransitionTo(next) {
		return errs.NewConflictErrorWithDetail(kernel.ErrInvalidTransition, "order", o.id.String(),
			fmt.Sprintf("%s -> %s", o.status, next))
	}
	o.status = next
	o.updatedAt = now.UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	o.code = code
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = name
	return nil
}

func (o *Order) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for i, item := range items {
		if item.quantity <= 0 || item.productRef == "" {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d must be created via NewItem", i))
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setCenter(center kernel.Center) error {
	if err := center.Validate(); err != nil {
		return err
	}
	o.center = center
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
