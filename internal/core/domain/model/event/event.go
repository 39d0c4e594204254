// Package event defines the integration events written to the outbox and
// published to subscribers such as the notification dispatcher.
package event

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Type names an event on the wire.
type Type string

const (
	OrderReadyForDispatch       Type = "order.ready_for_dispatch"
	OrderCancelled              Type = "order.cancelled"
	DeliveryAssigned            Type = "delivery.assigned"
	DeliveryStatusChanged       Type = "delivery.status_changed"
	DeliveryProofAttached       Type = "delivery.proof_attached"
	DeliveryVerificationChanged Type = "delivery.verification_changed"
	DriverApprovalChanged       Type = "driver.approval_changed"
)

// Event is an immutable record of something that happened in the core.
// The payload is JSON.
type Event struct {
	id            kernel.UUID
	eventType     Type
	aggregateType string
	aggregateID   kernel.UUID
	payload       []byte
	occurredAt    time.Time
}

// New marshals payload and stamps the event with a fresh id.
func New(eventType Type, aggregateType string, aggregateID kernel.UUID, payload any, occurredAt time.Time) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}
	return Restore(kernel.NewUUID(), eventType, aggregateType, aggregateID, raw, occurredAt.UTC())
}

// Restore rebuilds a stored event.
func Restore(
	id kernel.UUID,
	eventType Type,
	aggregateType string,
	aggregateID kernel.UUID,
	payload []byte,
	occurredAt time.Time,
) (Event, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if strings.TrimSpace(string(eventType)) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("eventType"))
	}
	if strings.TrimSpace(aggregateType) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("aggregateType"))
	}
	if err := aggregateID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if !json.Valid(payload) {
		errList = append(errList, errs.NewValueIsInvalidError("payload"))
	}
	if err := errors.Join(errList...); err != nil {
		return Event{}, err
	}

	return Event{
		id:            id,
		eventType:     eventType,
		aggregateType: aggregateType,
		aggregateID:   aggregateID,
		payload:       payload,
		occurredAt:    occurredAt,
	}, nil
}

func (e Event) ID() kernel.UUID {
	return e.id
}

func (e Event) Type() Type {
	return e.eventType
}

func (e Event) AggregateType() string {
	return e.aggregateType
}

// AggregateID is also used as the partition key when publishing.
func (e Event) AggregateID() kernel.UUID {
	return e.aggregateID
}

func (e Event) Payload() []byte {
	return e.payload
}

func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}
