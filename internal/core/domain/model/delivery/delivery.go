package delivery

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
	// ErrDeliveryIsNotConstructed is returned when using an improperly initialized Delivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
	// ErrProofIsRequired is returned when neither a photo nor a signature is supplied.
	ErrProofIsRequired = errs.NewValueIsRequiredError("photoUrl or signatureUrl")
)

// Delivery binds one order to one driver and one vehicle.
//
// Delivery follows these invariants:
//   - The center is copied from the order at creation and never changes
//   - The timeline is append-only; its first event is the assignment
//   - Terminal deliveries reject status moves and positions
//   - Proof and verification never change the status
type Delivery struct {
	id                kernel.UUID
	orderID           kernel.UUID
	driverID          kernel.UUID
	vehicleID         kernel.UUID
	center            kernel.Center
	status            Status
	assignedBy        string
	assignedAt        time.Time
	completedAt       *time.Time
	updatedAt         time.Time
	notes             string
	timeline          []TimelineEvent
	lastKnownPosition *Position
	verified          bool
	proof             Proof
	guard             guard.ConstructorGuard
}

// State carries the persisted fields used by RestoreDelivery.
type State struct {
	ID                kernel.UUID
	OrderID           kernel.UUID
	DriverID          kernel.UUID
	VehicleID         kernel.UUID
	Center            kernel.Center
	Status            Status
	AssignedBy        string
	AssignedAt        time.Time
	CompletedAt       *time.Time
	UpdatedAt         time.Time
	Notes             string
	Timeline          []TimelineEvent
	LastKnownPosition *Position
	Verified          bool
	Proof             Proof
}

// NewDelivery creates an Assigned delivery with its first timeline event.
//
// Parameters:
//   - id: the delivery id, chosen by the caller so a retried request is recognizable
//   - orderID, driverID, vehicleID: the bound resources, all required
//   - center: the order's distribution center; it never changes afterwards
//   - assignedBy: the requesting user, required
//   - notes: optional dispatcher notes, trimmed and copied to the first event
//   - now: assignment time, stored in UTC
//
// Returns:
//   - *Delivery: the Assigned delivery with one StatusChanged event
//   - error: joined ValueIsRequired/ValueIsInvalid errors for every bad argument
//
// Example:
//
//	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), drv.ID(), veh.ID(),
//	    o.Center(), "dispatcher-7", "fragile", time.Now())
func NewDelivery(
	id, orderID, driverID, vehicleID kernel.UUID,
	center kernel.Center,
	assignedBy string,
	notes string,
	now time.Time,
) (*Delivery, error) {
	now = now.UTC()
	d := &Delivery{
		status:     Assigned,
		assignedAt: now,
		updatedAt:  now,
		notes:      strings.TrimSpace(notes),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setIDs(id, orderID, driverID, vehicleID),
		d.setCenter(center),
		d.setAssignedBy(assignedBy),
	); err != nil {
		return nil, err
	}

	d.appendEvent(EventStatusChanged, Assigned, now, d.notes, nil)
	return d, nil
}

// RestoreDelivery rebuilds a Delivery from persisted state. Timeline events
// must be ordered by sequence.
func RestoreDelivery(s State) (*Delivery, error) {
	d := &Delivery{
		assignedAt:        s.AssignedAt,
		completedAt:       s.CompletedAt,
		updatedAt:         s.UpdatedAt,
		notes:             s.Notes,
		lastKnownPosition: s.LastKnownPosition,
		verified:          s.Verified,
		proof:             s.Proof,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setIDs(s.ID, s.OrderID, s.DriverID, s.VehicleID),
		d.setCenter(s.Center),
		d.setAssignedBy(s.AssignedBy),
		d.setStatus(s.Status),
		d.setTimeline(s.Timeline),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

func (d *Delivery) DriverID() kernel.UUID {
	return d.driverID
}

func (d *Delivery) VehicleID() kernel.UUID {
	return d.vehicleID
}

func (d *Delivery) Center() kernel.Center {
	return d.center
}

func (d *Delivery) Status() Status {
	return d.status
}

// AssignedBy is the user who confirmed the assignment.
func (d *Delivery) AssignedBy() string {
	return d.assignedBy
}

func (d *Delivery) AssignedAt() time.Time {
	return d.assignedAt
}

func (d *Delivery) CompletedAt() *time.Time {
	return d.completedAt
}

func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

func (d *Delivery) Notes() string {
	return d.notes
}

// Timeline returns a copy of the events ordered by sequence.
func (d *Delivery) Timeline() []TimelineEvent {
	events := make([]TimelineEvent, len(d.timeline))
	copy(events, d.timeline)
	return events
}

// LastActivityAt is the timestamp of the newest timeline event.
func (d *Delivery) LastActivityAt() time.Time {
	if len(d.timeline) == 0 {
		return d.assignedAt
	}
	return d.timeline[len(d.timeline)-1].timestamp
}

func (d *Delivery) LastKnownPosition() *Position {
	if d.lastKnownPosition == nil {
		return nil
	}
	p := *d.lastKnownPosition
	return &p
}

func (d *Delivery) IsVerified() bool {
	return d.verified
}

func (d *Delivery) Proof() Proof {
	return d.proof
}

// AdvanceStatus applies one move of the state machine and appends exactly one
// timeline event. Moves outside the table fail with kernel.ErrInvalidTransition
// and leave the delivery unchanged.
func (d *Delivery) AdvanceStatus(next Status, note string, location *kernel.GeoPoint, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}
	if !d.status.CanTransitionTo(next) {
		return d.invalidTransition(fmt.Sprintf("%s -> %s", d.status, next))
	}

	now = now.UTC()
	d.status = next
	d.updatedAt = now
	if next == Delivered {
		d.completedAt = &now
	}
	d.appendEvent(EventStatusChanged, next, now, strings.TrimSpace(note), location)

	return nil
}

// RecordPosition updates the last known position unless the report is older
// than the stored one. Reports dated after now are clamped to now, so a skewed
// client clock cannot pin the position in the future. Activity and the
// PositionSampled event (appended with a positive sampleInterval when the
// previous sample is at least that old) are stamped with now.
//
// Parameters:
//   - p: the reported position; its timestamp orders reports
//   - now: server time of the report
//   - sampleInterval: minimum gap between PositionSampled events, 0 disables them
//
// Returns whether the position was applied and whether a timeline event was appended.
func (d *Delivery) RecordPosition(p Position, now time.Time, sampleInterval time.Duration) (applied bool, sampled bool, err error) {
	if d.status.IsTerminal() {
		return false, false, d.invalidTransition(fmt.Sprintf("position on %s delivery", d.status))
	}
	if p.timestamp.IsZero() {
		return false, false, errs.NewValueIsRequiredError("position")
	}

	now = now.UTC()
	if p.timestamp.After(now) {
		p.timestamp = now
	}
	if d.lastKnownPosition != nil && p.timestamp.Before(d.lastKnownPosition.timestamp) {
		return false, false, nil
	}

	d.lastKnownPosition = &p
	if now.After(d.updatedAt) {
		d.updatedAt = now
	}

	if sampleInterval > 0 && d.sampleDue(now, sampleInterval) {
		point := p.point
		d.appendEvent(EventPositionSampled, d.status, now, "", &point)
		sampled = true
	}

	return true, sampled, nil
}

// AttachProof merges the supplied URLs into the existing proof. At least one
// URL is required. Status and verification are not touched.
func (d *Delivery) AttachProof(photoURL, signatureURL string, now time.Time) error {
	photo, photoErr := validateProofURL("photoUrl", photoURL)
	signature, signatureErr := validateProofURL("signatureUrl", signatureURL)
	if err := errors.Join(photoErr, signatureErr); err != nil {
		return err
	}
	if photo == "" && signature == "" {
		return ErrProofIsRequired
	}

	now = now.UTC()
	if photo != "" {
		d.proof.photoURL = photo
	}
	if signature != "" {
		d.proof.signatureURL = signature
	}
	d.proof.timestamp = &now
	d.updatedAt = now

	return nil
}

// SetVerification sets the reviewer flag in any status and reports whether it changed.
func (d *Delivery) SetVerification(verified bool, now time.Time) bool {
	if d.verified == verified {
		return false
	}
	d.verified = verified
	d.updatedAt = now.UTC()
	return true
}

func (d *Delivery) sampleDue(at time.Time, interval time.Duration) bool {
	for i := len(d.timeline) - 1; i >= 0; i-- {
		if d.timeline[i].kind == EventPositionSampled {
			return at.Sub(d.timeline[i].timestamp) >= interval
		}
	}
	return true
}

func (d *Delivery) appendEvent(kind EventKind, status Status, at time.Time, note string, location *kernel.GeoPoint) {
	d.timeline = append(d.timeline, TimelineEvent{
		sequence:  len(d.timeline) + 1,
		kind:      kind,
		status:    status,
		timestamp: at,
		note:      note,
		location:  location,
	})
}

func (d *Delivery) invalidTransition(detail string) error {
	return errs.NewConflictErrorWithDetail(kernel.ErrInvalidTransition, "delivery", d.id.String(), detail)
}

func (d *Delivery) setIDs(id, orderID, driverID, vehicleID kernel.UUID) error {
	var errList []error
	for name, v := range map[string]kernel.UUID{
		"id": id, "orderId": orderID, "driverId": driverID, "vehicleId": vehicleID,
	} {
		if v.IsZero() {
			errList = append(errList, errs.NewValueIsRequiredError(name))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	d.id, d.orderID, d.driverID, d.vehicleID = id, orderID, driverID, vehicleID
	return nil
}

func (d *Delivery) setCenter(center kernel.Center) error {
	if err := center.Validate(); err != nil {
		return err
	}
	d.center = center
	return nil
}

func (d *Delivery) setAssignedBy(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errs.NewValueIsRequiredError("requestingUserId")
	}
	d.assignedBy = userID
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Delivery) setTimeline(events []TimelineEvent) error {
	if len(events) == 0 {
		return errs.NewValueIsRequiredError("timeline")
	}
	for i, e := range events {
		if e.sequence != i+1 {
			return errs.NewValueIsInvalidErrorWithCause("timeline",
				fmt.Errorf("event %d has sequence %d", i+1, e.sequence))
		}
	}
	d.timeline = make([]TimelineEvent, len(events))
	copy(d.timeline, events)
	return nil
}
