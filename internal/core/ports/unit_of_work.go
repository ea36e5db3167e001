package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. An order and the status
// event describing its change are always written in the same unit of work.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Repositories bound to the transaction started by Begin.
	OrderRepository() OrderRepository
	StatusEventRepository() StatusEventRepository
	CourierRepository() CourierRepository
}
