// Package readmodel answers the dispatch queries with SQL over the tables
// owned by the repositories. It never loads aggregates.
package readmodel

import (
	"context"
	"strings"
	"time"

	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/pgerr"
	"dispatch/internal/adapters/out/postgres/vehiclerepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// Reader implements queries.Reader.
type Reader struct {
	db *gorm.DB
}

func NewReader(db *gorm.DB) *Reader {
	return &Reader{db: db}
}

var _ queries.Reader = (*Reader)(nil)

func (r *Reader) ListDrivers(ctx context.Context, filter queries.DriverFilter) ([]queries.DriverView, error) {
	db := r.db.WithContext(ctx).Model(&driverrepo.DriverDTO{})
	if filter.Center != nil {
		db = db.Where("center = ?", filter.Center.String())
	}
	if filter.ApprovalStatus != nil {
		db = db.Where("approval_status = ?", filter.ApprovalStatus.String())
	}
	if filter.ActiveStatus != nil {
		db = db.Where("active_status = ?", filter.ActiveStatus.String())
	}
	if pattern, ok := likePattern(filter.Search); ok {
		db = db.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
	}

	var rows []driverrepo.DriverDTO
	if err := db.Order("name").Find(&rows).Error; err != nil {
		return nil, pgerr.Translate("list drivers", err)
	}
	return driverViews(rows), nil
}

func (r *Reader) ListVehicles(ctx context.Context, filter queries.VehicleFilter) ([]queries.VehicleView, error) {
	db := r.db.WithContext(ctx).Model(&vehiclerepo.VehicleDTO{})
	if filter.Center != nil {
		db = db.Where("center = ?", filter.Center.String())
	}
	if filter.ActiveStatus != nil {
		db = db.Where("active_status = ?", filter.ActiveStatus.String())
	}
	if pattern, ok := likePattern(filter.Search); ok {
		db = db.Where("model ILIKE ? OR plate ILIKE ?", pattern, pattern)
	}

	var rows []vehiclerepo.VehicleDTO
	if err := db.Order("plate").Find(&rows).Error; err != nil {
		return nil, pgerr.Translate("list vehicles", err)
	}
	return vehicleViews(rows), nil
}

// AvailableDrivers anti-joins deliveries at call time; no availability flag
// is stored.
func (r *Reader) AvailableDrivers(ctx context.Context, center kernel.Center) ([]queries.DriverView, error) {
	var rows []driverrepo.DriverDTO
	err := r.db.WithContext(ctx).
		Where("center = ? AND approval_status = ? AND active_status = ?",
			center.String(), driver.ApprovalApproved.String(), kernel.Active.String()).
		Where("NOT EXISTS (SELECT 1 FROM deliveries d WHERE d.driver_id = drivers.id AND d.status IN ?)",
			activeCodes()).
		Order("name").
		Find(&rows).Error
	if err != nil {
		return nil, pgerr.Translate("list available drivers", err)
	}
	return driverViews(rows), nil
}

func (r *Reader) AvailableVehicles(ctx context.Context, center kernel.Center) ([]queries.VehicleView, error) {
	var rows []vehiclerepo.VehicleDTO
	err := r.db.WithContext(ctx).
		Where("center = ? AND active_status = ?", center.String(), kernel.Active.String()).
		Where("NOT EXISTS (SELECT 1 FROM deliveries d WHERE d.vehicle_id = vehicles.id AND d.status IN ?)",
			activeCodes()).
		Order("plate").
		Find(&rows).Error
	if err != nil {
		return nil, pgerr.Translate("list available vehicles", err)
	}
	return vehicleViews(rows), nil
}

func (r *Reader) ListReadyForDispatch(ctx context.Context, filter queries.ReadyOrderFilter) ([]queries.OrderView, error) {
	db := r.db.WithContext(ctx).Model(&orderrepo.OrderDTO{}).
		Where("status = ?", int(order.ReadyForDispatch))
	if filter.Center != nil {
		db = db.Where("center = ?", filter.Center.String())
	}
	if filter.Priority != nil {
		db = db.Where("priority = ?", filter.Priority.String())
	}
	if filter.From != nil {
		db = db.Where("created_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		db = db.Where("created_at <= ?", filter.To.UTC())
	}
	if pattern, ok := likePattern(filter.Search); ok {
		db = db.Where("code ILIKE ? OR customer_name ILIKE ?", pattern, pattern)
	}

	var rows []orderrepo.OrderDTO
	if err := db.Order("priority_rank").Order("created_at").Find(&rows).Error; err != nil {
		return nil, pgerr.Translate("list ready orders", err)
	}

	views := make([]queries.OrderView, 0, len(rows))
	for _, row := range rows {
		views = append(views, orderView(row))
	}
	return views, nil
}

func (r *Reader) GetOrder(ctx context.Context, id kernel.UUID) (queries.OrderView, error) {
	var row orderrepo.OrderDTO
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id.Bytes()).Error; err != nil {
		return queries.OrderView{}, pgerr.NotFound("get order view", "order", id.String(), err)
	}
	return orderView(row), nil
}

func (r *Reader) ListDeliveries(ctx context.Context, filter queries.DeliveryFilter) (queries.DeliveryPage, error) {
	var total int64
	if err := r.deliveries(ctx, filter).Count(&total).Error; err != nil {
		return queries.DeliveryPage{}, pgerr.Translate("count deliveries", err)
	}

	var rows []deliveryRow
	err := r.deliveries(ctx, filter).
		Select(deliveryColumns).
		Order("deliveries.assigned_at DESC").
		Order("deliveries.id").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Scan(&rows).Error
	if err != nil {
		return queries.DeliveryPage{}, pgerr.Translate("list deliveries", err)
	}

	data := make([]queries.DeliveryView, 0, len(rows))
	for _, row := range rows {
		data = append(data, row.view())
	}
	return queries.DeliveryPage{Data: data, Total: total}, nil
}

func (r *Reader) GetDelivery(ctx context.Context, id kernel.UUID) (queries.DeliveryView, error) {
	var rows []deliveryRow
	err := r.joined(ctx).
		Select(deliveryColumns).
		Where("deliveries.id = ?", id.Bytes()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return queries.DeliveryView{}, pgerr.Translate("get delivery view", err)
	}
	if len(rows) == 0 {
		return queries.DeliveryView{}, pgerr.NotFound("get delivery view", "delivery", id.String(), gorm.ErrRecordNotFound)
	}
	return rows[0].view(), nil
}

func (r *Reader) GetTimeline(ctx context.Context, id kernel.UUID) ([]queries.TimelineEventView, error) {
	var exists int64
	err := r.db.WithContext(ctx).Model(&deliveryrepo.DeliveryDTO{}).Where("id = ?", id.Bytes()).Count(&exists).Error
	if err != nil {
		return nil, pgerr.Translate("get timeline", err)
	}
	if exists == 0 {
		return nil, pgerr.NotFound("get timeline", "delivery", id.String(), gorm.ErrRecordNotFound)
	}

	var rows []deliveryrepo.TimelineEventDTO
	err = r.db.WithContext(ctx).Where("delivery_id = ?", id.Bytes()).Order("sequence").Find(&rows).Error
	if err != nil {
		return nil, pgerr.Translate("get timeline", err)
	}

	views := make([]queries.TimelineEventView, 0, len(rows))
	for _, row := range rows {
		view := queries.TimelineEventView{
			Sequence:  row.Sequence,
			Kind:      row.Kind,
			Status:    delivery.Status(row.Status).String(),
			Timestamp: row.Timestamp.UTC(),
			Note:      row.Note,
		}
		if row.LocationLat != nil && row.LocationLng != nil {
			view.Location = &queries.LocationView{Lat: *row.LocationLat, Lng: *row.LocationLng}
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *Reader) ListStale(ctx context.Context, before time.Time) ([]queries.StaleDeliveryView, error) {
	var rows []deliveryrepo.DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("status IN ? AND last_activity_at < ?", activeCodes(), before.UTC()).
		Order("last_activity_at").
		Find(&rows).Error
	if err != nil {
		return nil, pgerr.Translate("list stale deliveries", err)
	}

	views := make([]queries.StaleDeliveryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.StaleDeliveryView{
			ID:             idOf(row.ID[:]),
			OrderID:        idOf(row.OrderID[:]),
			DriverID:       idOf(row.DriverID[:]),
			Center:         row.Center,
			Status:         delivery.Status(row.Status).String(),
			LastActivityAt: row.LastActivityAt.UTC(),
		})
	}
	return views, nil
}

// deliveries builds a fresh filtered query on every call so Count and Scan
// do not share statement state.
func (r *Reader) deliveries(ctx context.Context, filter queries.DeliveryFilter) *gorm.DB {
	db := r.joined(ctx)
	if filter.Center != nil {
		db = db.Where("deliveries.center = ?", filter.Center.String())
	}
	if filter.Status != nil {
		db = db.Where("deliveries.status = ?", int(*filter.Status))
	}
	if filter.StartDate != nil {
		db = db.Where("deliveries.assigned_at >= ?", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		db = db.Where("deliveries.assigned_at <= ?", filter.EndDate.UTC())
	}
	if pattern, ok := likePattern(filter.Search); ok {
		db = db.Where("o.code ILIKE ? OR o.customer_name ILIKE ? OR dr.name ILIKE ? OR v.plate ILIKE ?",
			pattern, pattern, pattern, pattern)
	}
	return db
}

func (r *Reader) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("deliveries").
		Joins("JOIN orders o ON o.id = deliveries.order_id").
		Joins("JOIN drivers dr ON dr.id = deliveries.driver_id").
		Joins("JOIN vehicles v ON v.id = deliveries.vehicle_id")
}

func activeCodes() []int {
	return deliveryrepo.StatusCodes(delivery.NonTerminal())
}

// likePattern returns a case-insensitive substring pattern for ILIKE with
// wildcards in the term escaped. ok is false for a blank term.
func likePattern(term string) (string, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", false
	}
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + escaped + "%", true
}
