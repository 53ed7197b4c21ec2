package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh unit of work per business operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork wraps one database transaction and hands out repositories bound
// to it. Repositories obtained before Begin run outside any transaction.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.ItemRepository().Add(ctx, item); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
type UnitOfWork interface {
	// Begin starts the transaction. Calling it twice is a no-op.
	Begin(ctx context.Context) error

	// Commit makes all changes permanent and ends the transaction.
	Commit(ctx context.Context) error

	// Rollback discards all changes and ends the transaction. After a
	// successful Commit it returns an error and changes nothing, so it is
	// safe to defer.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	ItemRepository() ItemRepository
}
