package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories returned by it
// are bound to the transaction started by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the current transaction. Store-level constraint
	// violations surfacing at commit are mapped to domain conflicts.
	Commit(ctx context.Context) error

	// Rollback is a no-op after a successful Commit.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	DriverRepository() DriverRepository
	VehicleRepository() VehicleRepository
	DeliveryRepository() DeliveryRepository
	OutboxRepository() OutboxRepository
}
