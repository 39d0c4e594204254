package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrSetDriverApprovalCommandIsNotConstructed = errors.New(
	"SetDriverApprovalCommand must be created via NewSetDriverApprovalCommand constructor",
)

// SetDriverApprovalCommand records an onboarding decision: Approved or Rejected.
type SetDriverApprovalCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	status   driver.ApprovalStatus

	guard guard.ConstructorGuard
}

func NewSetDriverApprovalCommand(driverID kernel.UUID, status string) (SetDriverApprovalCommand, error) {
	parsed, statusErr := driver.ParseApprovalStatus(status)
	if statusErr == nil && parsed == driver.ApprovalPending {
		statusErr = errs.NewValueIsInvalidErrorWithCause("approvalStatus",
			fmt.Errorf("a decision must be %s or %s", driver.ApprovalApproved, driver.ApprovalRejected))
	}

	if err := errors.Join(requireID("driverId", driverID), statusErr); err != nil {
		return SetDriverApprovalCommand{}, err
	}

	return SetDriverApprovalCommand{
		driverID: driverID,
		status:   parsed,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SetDriverApprovalCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverApprovalCommandIsNotConstructed)
}

func (c SetDriverApprovalCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c SetDriverApprovalCommand) Status() driver.ApprovalStatus {
	return c.status
}
