package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Position is a reported location of the vehicle carrying a delivery.
// Speed and heading are optional.
type Position struct {
	point     kernel.GeoPoint
	speed     *float64
	heading   *float64
	timestamp time.Time
}

// NewPosition validates speed >= 0 and heading within [0, 360).
func NewPosition(point kernel.GeoPoint, speed, heading *float64, timestamp time.Time) (Position, error) {
	var errList []error
	if err := point.Validate(); err != nil {
		errList = append(errList, err)
	}
	if speed != nil && *speed < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("speed", *speed, 0, "+Inf"))
	}
	if heading != nil && (*heading < 0 || *heading >= 360) {
		errList = append(errList, errs.NewValueIsOutOfRangeError("heading", *heading, 0, "360 (exclusive)"))
	}
	if timestamp.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("timestamp"))
	}
	if err := errors.Join(errList...); err != nil {
		return Position{}, err
	}

	return Position{
		point:     point,
		speed:     copyFloat(speed),
		heading:   copyFloat(heading),
		timestamp: timestamp.UTC(),
	}, nil
}

func (p Position) Point() kernel.GeoPoint {
	return p.point
}

func (p Position) Speed() *float64 {
	return copyFloat(p.speed)
}

func (p Position) Heading() *float64 {
	return copyFloat(p.heading)
}

func (p Position) Timestamp() time.Time {
	return p.timestamp
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
