package delivery

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// EventKind distinguishes status moves from sampled positions.
type EventKind string

const (
	EventStatusChanged   EventKind = "StatusChanged"
	EventPositionSampled EventKind = "PositionSampled"
)

// TimelineEvent is one append-only audit entry. Sequence starts at 1 with the
// assignment event.
type TimelineEvent struct {
	sequence  int
	kind      EventKind
	status    Status
	timestamp time.Time
	note      string
	location  *kernel.GeoPoint
}

// RestoreTimelineEvent rebuilds a persisted event.
func RestoreTimelineEvent(
	sequence int,
	kind EventKind,
	status Status,
	timestamp time.Time,
	note string,
	location *kernel.GeoPoint,
) TimelineEvent {
	return TimelineEvent{
		sequence:  sequence,
		kind:      kind,
		status:    status,
		timestamp: timestamp,
		note:      note,
		location:  location,
	}
}

func (e TimelineEvent) Sequence() int {
	return e.sequence
}

func (e TimelineEvent) Kind() EventKind {
	return e.kind
}

// Status is the delivery status the event moved to, or the current status for
// sampled positions.
func (e TimelineEvent) Status() Status {
	return e.status
}

func (e TimelineEvent) Timestamp() time.Time {
	return e.timestamp
}

func (e TimelineEvent) Note() string {
	return e.note
}

func (e TimelineEvent) Location() *kernel.GeoPoint {
	return e.location
}
