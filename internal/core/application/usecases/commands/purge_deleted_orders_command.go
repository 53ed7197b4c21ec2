package commands

import (
	"errors"
	"time"

	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"
)

var ErrPurgeDeletedOrdersCommandIsNotConstructed = errors.New(
	"PurgeDeletedOrdersCommand must be created via NewPurgeDeletedOrdersCommand constructor",
)

// PurgeDeletedOrdersCommand removes soft-deleted orders whose deletion is
// older than a cutoff.
type PurgeDeletedOrdersCommand struct { //nolint:recvcheck //using for validation
	deletedBefore time.Time
	batchSize     int

	guard guard.ConstructorGuard
}

// NewPurgeDeletedOrdersCommand creates a purge request for at most batchSize
// orders soft-deleted before deletedBefore.
func NewPurgeDeletedOrdersCommand(deletedBefore time.Time, batchSize int) (PurgeDeletedOrdersCommand, error) {
	if deletedBefore.IsZero() {
		return PurgeDeletedOrdersCommand{}, errs.NewValueIsRequiredError("deletedBefore")
	}
	if batchSize <= 0 {
		return PurgeDeletedOrdersCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}

	return PurgeDeletedOrdersCommand{
		deletedBefore: deletedBefore,
		batchSize:     batchSize,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeDeletedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeDeletedOrdersCommandIsNotConstructed)
}

// DeletedBefore returns the cutoff time.
func (c PurgeDeletedOrdersCommand) DeletedBefore() time.Time {
	return c.deletedBefore
}

// BatchSize returns the maximum number of orders purged by one run.
func (c PurgeDeletedOrdersCommand) BatchSize() int {
	return c.batchSize
}
