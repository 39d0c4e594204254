// Package deliveryrepo persists the delivery aggregate. The timeline lives in
// its own append-only table keyed by (delivery_id, sequence).
package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the deliveries row. The last known position and the proof are
// flattened into nullable columns.
type DeliveryDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;not null;index"`
	DriverID          uuid.UUID `gorm:"type:uuid;not null;index"`
	VehicleID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Center            string    `gorm:"size:32;not null;index"`
	Status            int       `gorm:"not null;index"`
	AssignedBy        string    `gorm:"not null"`
	AssignedAt        time.Time `gorm:"not null;index"`
	CompletedAt       *time.Time
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime:false"`
	LastActivityAt    time.Time `gorm:"not null;index"`
	Notes             string
	Verified          bool      `gorm:"not null;default:false"`
	ProofPhotoURL     string
	ProofSignatureURL string
	ProofAt           *time.Time
	PositionLat       *float64
	PositionLng       *float64
	PositionSpeed     *float64
	PositionHeading   *float64
	PositionAt        *time.Time
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// TimelineEventDTO is one delivery_timeline row.
type TimelineEventDTO struct {
	DeliveryID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence    int       `gorm:"primaryKey"`
	Kind        string    `gorm:"size:32;not null"`
	Status      int       `gorm:"not null"`
	Timestamp   time.Time `gorm:"not null"`
	Note        string
	LocationLat *float64
	LocationLng *float64
}

func (TimelineEventDTO) TableName() string {
	return "delivery_timeline"
}

func fromDomain(d *delivery.Delivery) (DeliveryDTO, []TimelineEventDTO) {
	proof := d.Proof()
	dto := DeliveryDTO{
		ID:                d.ID().Bytes(),
		OrderID:           d.OrderID().Bytes(),
		DriverID:          d.DriverID().Bytes(),
		VehicleID:         d.VehicleID().Bytes(),
		Center:            d.Center().String(),
		Status:            int(d.Status()),
		AssignedBy:        d.AssignedBy(),
		AssignedAt:        d.AssignedAt(),
		CompletedAt:       d.CompletedAt(),
		UpdatedAt:         d.UpdatedAt(),
		LastActivityAt:    d.LastActivityAt(),
		Notes:             d.Notes(),
		Verified:          d.IsVerified(),
		ProofPhotoURL:     proof.PhotoURL(),
		ProofSignatureURL: proof.SignatureURL(),
		ProofAt:           proof.Timestamp(),
	}

	if p := d.LastKnownPosition(); p != nil {
		lat, lng, at := p.Point().Lat(), p.Point().Lng(), p.Timestamp()
		dto.PositionLat = &lat
		dto.PositionLng = &lng
		dto.PositionSpeed = p.Speed()
		dto.PositionHeading = p.Heading()
		dto.PositionAt = &at
	}

	timeline := d.Timeline()
	events := make([]TimelineEventDTO, 0, len(timeline))
	for _, e := range timeline {
		row := TimelineEventDTO{
			DeliveryID: dto.ID,
			Sequence:   e.Sequence(),
			Kind:       string(e.Kind()),
			Status:     int(e.Status()),
			Timestamp:  e.Timestamp(),
			Note:       e.Note(),
		}
		if loc := e.Location(); loc != nil {
			lat, lng := loc.Lat(), loc.Lng()
			row.LocationLat = &lat
			row.LocationLng = &lng
		}
		events = append(events, row)
	}

	return dto, events
}

func toDomain(dto DeliveryDTO, rows []TimelineEventDTO) (*delivery.Delivery, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.OrderID, dto.DriverID, dto.VehicleID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	timeline := make([]delivery.TimelineEvent, 0, len(rows))
	for _, row := range rows {
		var location *kernel.GeoPoint
		if row.LocationLat != nil && row.LocationLng != nil {
			point, err := kernel.NewGeoPoint(*row.LocationLat, *row.LocationLng)
			if err != nil {
				return nil, err
			}
			location = &point
		}
		timeline = append(timeline, delivery.RestoreTimelineEvent(
			row.Sequence,
			delivery.EventKind(row.Kind),
			delivery.Status(row.Status),
			row.Timestamp.UTC(),
			row.Note,
			location,
		))
	}

	var position *delivery.Position
	if dto.PositionLat != nil && dto.PositionLng != nil && dto.PositionAt != nil {
		point, err := kernel.NewGeoPoint(*dto.PositionLat, *dto.PositionLng)
		if err != nil {
			return nil, err
		}
		p, err := delivery.NewPosition(point, dto.PositionSpeed, dto.PositionHeading, dto.PositionAt.UTC())
		if err != nil {
			return nil, err
		}
		position = &p
	}

	return delivery.RestoreDelivery(delivery.State{
		ID:                ids[0],
		OrderID:           ids[1],
		DriverID:          ids[2],
		VehicleID:         ids[3],
		Center:            kernel.Center(dto.Center),
		Status:            delivery.Status(dto.Status),
		AssignedBy:        dto.AssignedBy,
		AssignedAt:        dto.AssignedAt.UTC(),
		CompletedAt:       utcPtr(dto.CompletedAt),
		UpdatedAt:         dto.UpdatedAt.UTC(),
		Notes:             dto.Notes,
		Timeline:          timeline,
		LastKnownPosition: position,
		Verified:          dto.Verified,
		Proof:             delivery.RestoreProof(dto.ProofPhotoURL, dto.ProofSignatureURL, utcPtr(dto.ProofAt)),
	})
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
