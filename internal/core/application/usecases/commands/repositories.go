// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation in the command
// constructor, lifecycle guard, mutation, totals recalculation and commit,
// all inside one unit of work.
package commands

import (
	"salesorders/internal/core/ports"
)

type (
	// UoW manages transactions across orders and their items. It is the
	// ports unit of work, so any ports.UnitOfWorkFactory plugs straight into
	// the handlers.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   itemRepo := uow.ItemRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW = ports.UnitOfWork

	// UoWFactory creates new unit of work instances.
	UoWFactory = ports.UnitOfWorkFactory
)
