package queries

import (
	"strings"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// Empty filter values mean "no filter" and parse to nil.

func optionalCenter(s string) (*kernel.Center, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	c, err := kernel.ParseCenter(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func requiredCenter(s string) (kernel.Center, error) {
	if strings.TrimSpace(s) == "" {
		return "", errs.NewValueIsRequiredError("center")
	}
	return kernel.ParseCenter(s)
}

func optionalActiveStatus(s string) (*kernel.ActiveStatus, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	status, err := kernel.ParseActiveStatus(s)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func optionalApprovalStatus(s string) (*driver.ApprovalStatus, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	status, err := driver.ParseApprovalStatus(s)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func optionalPriority(s string) (*order.Priority, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	p, err := order.ParsePriority(s)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func optionalDeliveryStatus(s string) (*delivery.Status, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	status, err := delivery.ParseStatus(s)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func requireID(name string, id kernel.UUID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
