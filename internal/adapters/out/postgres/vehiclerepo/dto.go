// Package vehiclerepo persists the vehicle aggregate.
package vehiclerepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

type VehicleDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate        string    `gorm:"size:32;not null;index"`
	Model        string    `gorm:"not null"`
	CapacityKg   int       `gorm:"not null;default:0"`
	Center       string    `gorm:"size:32;not null;index"`
	ActiveStatus string    `gorm:"size:16;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:           v.ID().Bytes(),
		Plate:        v.Plate(),
		Model:        v.Model(),
		CapacityKg:   v.CapacityKg(),
		Center:       v.Center().String(),
		ActiveStatus: v.ActiveStatus().String(),
		CreatedAt:    v.CreatedAt(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		id,
		dto.Plate,
		dto.Model,
		dto.CapacityKg,
		kernel.Center(dto.Center),
		kernel.ActiveStatus(dto.ActiveStatus),
		dto.CreatedAt.UTC(),
	)
}
