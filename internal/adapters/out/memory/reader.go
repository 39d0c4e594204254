package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/pkg/errs"
)

// Reader implements queries.Reader over committed state.
type Reader struct {
	store *Store
}

func NewReader(store *Store) *Reader {
	return &Reader{store: store}
}

var _ queries.Reader = (*Reader)(nil)

func (r *Reader) ListDrivers(ctx context.Context, filter queries.DriverFilter) ([]queries.DriverView, error) {
	return r.drivers(ctx, func(d *driver.Driver) bool {
		return (filter.Center == nil || d.Center() == *filter.Center) &&
			(filter.ApprovalStatus == nil || d.ApprovalStatus() == *filter.ApprovalStatus) &&
			(filter.ActiveStatus == nil || d.ActiveStatus() == *filter.ActiveStatus) &&
			matches(filter.Search, d.Name(), d.Email(), d.Phone())
	})
}

func (r *Reader) ListVehicles(ctx context.Context, filter queries.VehicleFilter) ([]queries.VehicleView, error) {
	return r.vehicles(ctx, func(v *vehicle.Vehicle) bool {
		return (filter.Center == nil || v.Center() == *filter.Center) &&
			(filter.ActiveStatus == nil || v.ActiveStatus() == *filter.ActiveStatus) &&
			matches(filter.Search, v.Model(), v.Plate())
	})
}

func (r *Reader) AvailableDrivers(ctx context.Context, center kernel.Center) ([]queries.DriverView, error) {
	busy := r.boundResources()
	return r.drivers(ctx, func(d *driver.Driver) bool {
		return d.Center() == center && d.IsEligible() && !busy[d.ID()]
	})
}

func (r *Reader) AvailableVehicles(ctx context.Context, center kernel.Center) ([]queries.VehicleView, error) {
	busy := r.boundResources()
	return r.vehicles(ctx, func(v *vehicle.Vehicle) bool {
		return v.Center() == center && v.IsEligible() && !busy[v.ID()]
	})
}

func (r *Reader) ListReadyForDispatch(ctx context.Context, filter queries.ReadyOrderFilter) ([]queries.OrderView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	selected := make([]*order.Order, 0)
	for _, o := range r.store.orders {
		if o.Status() != order.ReadyForDispatch ||
			(filter.Center != nil && o.Center() != *filter.Center) ||
			(filter.Priority != nil && o.Priority() != *filter.Priority) ||
			(filter.From != nil && o.CreatedAt().Before(*filter.From)) ||
			(filter.To != nil && o.CreatedAt().After(*filter.To)) ||
			!matches(filter.Search, o.Code(), o.CustomerName()) {
			continue
		}
		selected = append(selected, o)
	}

	sort.Slice(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		if a.Priority().Rank() != b.Priority().Rank() {
			return a.Priority().Rank() < b.Priority().Rank()
		}
		if !a.CreatedAt().Equal(b.CreatedAt()) {
			return a.CreatedAt().Before(b.CreatedAt())
		}
		return a.Code() < b.Code()
	})

	views := make([]queries.OrderView, 0, len(selected))
	for _, o := range selected {
		views = append(views, queries.OrderViewOf(o))
	}
	return views, nil
}

func (r *Reader) GetOrder(ctx context.Context, id kernel.UUID) (queries.OrderView, error) {
	if err := ctx.Err(); err != nil {
		return queries.OrderView{}, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	o, ok := r.store.orders[id]
	if !ok {
		return queries.OrderView{}, errs.NewObjectNotFoundError("order", id.String())
	}
	return queries.OrderViewOf(o), nil
}

func (r *Reader) ListDeliveries(ctx context.Context, filter queries.DeliveryFilter) (queries.DeliveryPage, error) {
	if err := ctx.Err(); err != nil {
		return queries.DeliveryPage{}, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	selected := make([]queries.DeliveryView, 0)
	for _, d := range r.store.deliveries {
		if (filter.Center != nil && d.Center() != *filter.Center) ||
			(filter.Status != nil && d.Status() != *filter.Status) ||
			(filter.StartDate != nil && d.AssignedAt().Before(*filter.StartDate)) ||
			(filter.EndDate != nil && d.AssignedAt().After(*filter.EndDate)) {
			continue
		}
		view := r.deliveryView(d)
		if !matches(filter.Search, view.Order.Code, view.Order.CustomerName, view.Driver.Name, view.Vehicle.Plate) {
			continue
		}
		selected = append(selected, view)
	}

	sort.Slice(selected, func(i, j int) bool {
		if !selected[i].AssignedAt.Equal(selected[j].AssignedAt) {
			return selected[i].AssignedAt.After(selected[j].AssignedAt)
		}
		return selected[i].ID.String() < selected[j].ID.String()
	})

	total := int64(len(selected))
	start := (filter.Page - 1) * filter.Limit
	if start < 0 || start > len(selected) {
		start = len(selected)
	}
	end := start + filter.Limit
	if end > len(selected) {
		end = len(selected)
	}
	return queries.DeliveryPage{Data: selected[start:end], Total: total}, nil
}

func (r *Reader) GetDelivery(ctx context.Context, id kernel.UUID) (queries.DeliveryView, error) {
	if err := ctx.Err(); err != nil {
		return queries.DeliveryView{}, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	d, ok := r.store.deliveries[id]
	if !ok {
		return queries.DeliveryView{}, errs.NewObjectNotFoundError("delivery", id.String())
	}
	return r.deliveryView(d), nil
}

func (r *Reader) GetTimeline(ctx context.Context, id kernel.UUID) ([]queries.TimelineEventView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	d, ok := r.store.deliveries[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("delivery", id.String())
	}
	return queries.TimelineViewOf(d), nil
}

func (r *Reader) ListStale(ctx context.Context, before time.Time) ([]queries.StaleDeliveryView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	views := make([]queries.StaleDeliveryView, 0)
	for _, d := range r.store.deliveries {
		if !d.Status().IsTerminal() && d.LastActivityAt().Before(before) {
			views = append(views, queries.StaleViewOf(d))
		}
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].LastActivityAt.Before(views[j].LastActivityAt)
	})
	return views, nil
}

// deliveryView joins d with its order, driver and vehicle. The caller holds
// the read lock.
func (r *Reader) deliveryView(d *delivery.Delivery) queries.DeliveryView {
	return queries.DeliveryViewOf(d,
		r.store.orders[d.OrderID()],
		r.store.drivers[d.DriverID()],
		r.store.vehicles[d.VehicleID()],
	)
}

// boundResources returns the drivers and vehicles held by non-terminal deliveries.
func (r *Reader) boundResources() map[kernel.UUID]bool {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	busy := make(map[kernel.UUID]bool)
	for _, d := range r.store.deliveries {
		if !d.Status().IsTerminal() {
			busy[d.DriverID()] = true
			busy[d.VehicleID()] = true
		}
	}
	return busy
}

func (r *Reader) drivers(ctx context.Context, keep func(d *driver.Driver) bool) ([]queries.DriverView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	views := make([]queries.DriverView, 0)
	for _, d := range r.store.drivers {
		if keep(d) {
			views = append(views, queries.DriverViewOf(d))
		}
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, nil
}

func (r *Reader) vehicles(ctx context.Context, keep func(v *vehicle.Vehicle) bool) ([]queries.VehicleView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	views := make([]queries.VehicleView, 0)
	for _, v := range r.store.vehicles {
		if keep(v) {
			views = append(views, queries.VehicleViewOf(v))
		}
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Plate < views[j].Plate })
	return views, nil
}

// matches reports whether term is a case-insensitive substring of any field.
// A blank term matches everything.
func matches(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
