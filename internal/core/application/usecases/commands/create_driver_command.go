package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand registers a driver awaiting approval.
// A unique ID is generated for the driver.
//
// Example:
//
//	cmd, err := NewCreateDriverCommand("Grace", "grace@example.com", "+15550100", "North")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	fmt.Printf("Created driver with ID: %s", cmd.DriverID())
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string
	email    string
	phone    string
	center   kernel.Center

	guard guard.ConstructorGuard
}

func NewCreateDriverCommand(name, email, phone, center string) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		driverID: kernel.NewUUID(),
		email:    strings.TrimSpace(email),
		phone:    strings.TrimSpace(phone),
		guard:    guard.NewConstructorGuard(),
	}

	var nameErr, centerErr error
	cmd.name, nameErr = requireText("name", name)
	cmd.center, centerErr = kernel.ParseCenter(center)

	if err := errors.Join(nameErr, centerErr); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c CreateDriverCommand) Name() string {
	return c.name
}

func (c CreateDriverCommand) Email() string {
	return c.email
}

func (c CreateDriverCommand) Phone() string {
	return c.phone
}

func (c CreateDriverCommand) Center() kernel.Center {
	return c.center
}
