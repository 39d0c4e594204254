package deliveryrepo

import (
	"context"

	"dispatch/internal/adapters/out/postgres/pgerr"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
// Uniqueness of active assignments is enforced by the partial unique indexes
// created in postgres.Migrate; violations surface from Add as conflicts.
type GormDeliveryRepository struct {
	db *gorm.DB
}

func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, events := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Create(&dto).Error; err != nil {
		return pgerr.Translate("insert delivery", err)
	}
	return r.appendTimeline(db, events)
}

// Update writes the mutable columns and inserts timeline rows that are not
// stored yet. Existing rows are left untouched.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, events := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	result := db.Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select(
			"status", "completed_at", "updated_at", "last_activity_at", "verified",
			"proof_photo_url", "proof_signature_url", "proof_at",
			"position_lat", "position_lng", "position_speed", "position_heading", "position_at",
		).
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate("update delivery", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
	}
	return r.appendTimeline(db, events)
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.first(ctx, r.db, id)
}

// GetForUpdate locks the delivery row until the surrounding transaction ends.
func (r *GormDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.first(ctx, r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormDeliveryRepository) ActiveForDriver(ctx context.Context, driverID kernel.UUID) (*kernel.UUID, error) {
	return r.active(ctx, "driver_id", driverID)
}

func (r *GormDeliveryRepository) ActiveForVehicle(ctx context.Context, vehicleID kernel.UUID) (*kernel.UUID, error) {
	return r.active(ctx, "vehicle_id", vehicleID)
}

func (r *GormDeliveryRepository) active(ctx context.Context, column string, id kernel.UUID) (*kernel.UUID, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where(column+" = ? AND status IN ?", id.Bytes(), statusCodes(delivery.NonTerminal())).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, pgerr.Translate("find active delivery", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := kernel.UUIDFromBytes(ids[0][:])
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *GormDeliveryRepository) first(ctx context.Context, db *gorm.DB, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.NotFound("get delivery", "delivery", id.String(), err)
	}

	var rows []TimelineEventDTO
	err := r.db.WithContext(ctx).
		Where("delivery_id = ?", dto.ID).
		Order("sequence").
		Find(&rows).Error
	if err != nil {
		return nil, pgerr.Translate("get delivery timeline", err)
	}

	return toDomain(dto, rows)
}

func (r *GormDeliveryRepository) appendTimeline(db *gorm.DB, events []TimelineEventDTO) error {
	if len(events) == 0 {
		return nil
	}
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&events).Error
	if err != nil {
		return pgerr.Translate("append delivery timeline", err)
	}
	return nil
}

// StatusCodes converts statuses to their stored representation.
func StatusCodes(statuses []delivery.Status) []int {
	return statusCodes(statuses)
}

func statusCodes(statuses []delivery.Status) []int {
	codes := make([]int, 0, len(statuses))
	for _, s := range statuses {
		codes = append(codes, int(s))
	}
	return codes
}
