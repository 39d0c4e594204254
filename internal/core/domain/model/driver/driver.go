package driver

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Driver is a person who can be bound to a delivery.
//
// Business rules:
//   - A new driver starts Pending approval and Active
//   - Email is optional but must be well formed when present
//   - The home center never changes once created
type Driver struct {
	id             kernel.UUID
	name           string
	email          string
	phone          string
	center         kernel.Center
	approvalStatus ApprovalStatus
	activeStatus   kernel.ActiveStatus
	createdAt      time.Time
	guard          guard.ConstructorGuard
}

// NewDriver creates a driver awaiting approval.
//
// Example:
//
//	d, err := driver.NewDriver(kernel.NewUUID(), "Grace", "grace@example.com", "+1555", kernel.CenterNorth, time.Now())
func NewDriver(
	id kernel.UUID,
	name, email, phone string,
	center kernel.Center,
	createdAt time.Time,
) (*Driver, error) {
	d := &Driver{
		approvalStatus: ApprovalPending,
		activeStatus:   kernel.Active,
		createdAt:      createdAt.UTC(),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setEmail(email),
		d.setCenter(center),
	); err != nil {
		return nil, err
	}
	d.phone = strings.TrimSpace(phone)

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(
	id kernel.UUID,
	name, email, phone string,
	center kernel.Center,
	approvalStatus ApprovalStatus,
	activeStatus kernel.ActiveStatus,
	createdAt time.Time,
) (*Driver, error) {
	d := &Driver{
		phone:     phone,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setEmail(email),
		d.setCenter(center),
		d.setApprovalStatus(approvalStatus),
		d.setActiveStatus(activeStatus),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) Email() string {
	return d.email
}

func (d *Driver) Phone() string {
	return d.phone
}

func (d *Driver) Center() kernel.Center {
	return d.center
}

func (d *Driver) ApprovalStatus() ApprovalStatus {
	return d.approvalStatus
}

func (d *Driver) ActiveStatus() kernel.ActiveStatus {
	return d.activeStatus
}

func (d *Driver) CreatedAt() time.Time {
	return d.createdAt
}

// IsEligible reports whether the driver may be assigned at all:
// Approved and Active.
func (d *Driver) IsEligible() bool {
	return d.approvalStatus == ApprovalApproved && d.activeStatus.IsActive()
}

// SetApproval records an approval decision and reports whether it changed.
func (d *Driver) SetApproval(status ApprovalStatus) (bool, error) {
	if err := status.Validate(); err != nil {
		return false, err
	}
	if d.approvalStatus == status {
		return false, nil
	}
	d.approvalStatus = status
	return true, nil
}

// SetActive toggles the active flag and reports whether it changed.
func (d *Driver) SetActive(active bool) bool {
	next := kernel.ActiveStatusOf(active)
	if d.activeStatus == next {
		return false
	}
	d.activeStatus = next
	return true
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		d.email = ""
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	d.email = email
	return nil
}

func (d *Driver) setCenter(center kernel.Center) error {
	if err := center.Validate(); err != nil {
		return err
	}
	d.center = center
	return nil
}

func (d *Driver) setApprovalStatus(status ApprovalStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.approvalStatus = status
	return nil
}

func (d *Driver) setActiveStatus(status kernel.ActiveStatus) error {
	if _, err := kernel.ParseActiveStatus(string(status)); err != nil {
		return err
	}
	d.activeStatus = status
	return nil
}
