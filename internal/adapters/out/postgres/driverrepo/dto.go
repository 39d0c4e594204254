// Package driverrepo persists the driver aggregate.
package driverrepo

import (
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DriverDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"not null;index"`
	Email          string
	Phone          string
	Center         string    `gorm:"size:32;not null;index"`
	ApprovalStatus string    `gorm:"size:16;not null"`
	ActiveStatus   string    `gorm:"size:16;not null"`
	CreatedAt      time.Time `gorm:"not null"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:             d.ID().Bytes(),
		Name:           d.Name(),
		Email:          d.Email(),
		Phone:          d.Phone(),
		Center:         d.Center().String(),
		ApprovalStatus: d.ApprovalStatus().String(),
		ActiveStatus:   d.ActiveStatus().String(),
		CreatedAt:      d.CreatedAt(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		kernel.Center(dto.Center),
		driver.ApprovalStatus(dto.ApprovalStatus),
		kernel.ActiveStatus(dto.ActiveStatus),
		dto.CreatedAt.UTC(),
	)
}
