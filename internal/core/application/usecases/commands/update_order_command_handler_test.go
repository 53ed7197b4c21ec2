package commands_test

import (
	"testing"

	"salesorders/internal/core/application/usecases/commands"
	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle_StatusOnly(t *testing.T) {
	ctx := t.Context()
	target := existingOrder(t, order.New)
	items := []*order.Item{existingItem(t, target.ID(), "3", "0.335")}
	open := order.Open
	cmd, err := commands.NewUpdateOrderCommand(target.ID(), &open, nil)
	require.NoError(t, err)

	env := newMockEnv()
	mock.InOrder(
		env.uow.On("Begin", ctx).Return(nil).Once(),
		env.uow.On("OrderRepository").Return(env.orderRepo).Once(),
		env.uow.On("ItemRepository").Return(env.itemRepo).Once(),
		env.orderRepo.On("GetForUpdate", ctx, target.ID()).Return(target, nil).Once(),
		env.itemRepo.On("ListByOrder", ctx, target.ID()).Return(items, nil).Once(),
		env.orderRepo.On("Update", ctx, target).Return(nil).Once(),
		env.uow.On("Commit", ctx).Return(nil).Once(),
		env.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	updated, err := commands.NewUpdateOrderCommandHandler(env.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Open, updated.Status())
	assert.Equal(t, "1.01", updated.Total().StringFixed(2))
	env.itemRepo.AssertNotCalled(t, "DeleteByOrder", mock.Anything, mock.Anything)
	env.assertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ReplaceItems(t *testing.T) {
	ctx := t.Context()
	target := existingOrder(t, order.Open)
	replacement := []commands.OrderLine{line("P9", "4", "2.5")}
	cmd, err := commands.NewUpdateOrderCommand(target.ID(), nil, &replacement)
	require.NoError(t, err)

	env := newMockEnv()
	var inserted []*order.Item
	mock.InOrder(
		env.uow.On("Begin", ctx).Return(nil).Once(),
		env.uow.On("OrderRepository").Return(env.orderRepo).Once(),
		env.uow.On("ItemRepository").Return(env.itemRepo).Once(),
		env.orderRepo.On("GetForUpdate", ctx, target.ID()).Return(target, nil).Once(),
		env.itemRepo.On("DeleteByOrder", ctx, target.ID()).Return(int64(2), nil).Once(),
		env.itemRepo.On("Add", ctx, mock.AnythingOfType("[]*order.Item")).
			Run(func(args mock.Arguments) { inserted = args.Get(1).([]*order.Item) }).
			Return(nil).Once(),
		env.itemRepo.On("ListByOrder", ctx, target.ID()).
			Return(func(kernel.UUID) []*order.Item { return inserted }, nil).Once(),
		env.orderRepo.On("Update", ctx, target).Return(nil).Once(),
		env.uow.On("Commit", ctx).Return(nil).Once(),
		env.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	updated, err := commands.NewUpdateOrderCommandHandler(env.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, inserted, 1)
	assert.Equal(t, "P9", inserted[0].ProductID())
	assert.Equal(t, "10.00", updated.Total().StringFixed(2))
	env.assertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_LockedStatuses(t *testing.T) {
	for _, status := range []order.Status{order.Closed, order.Canceled} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			target := existingOrder(t, status)
			open := order.Open
			cmd, err := commands.NewUpdateOrderCommand(target.ID(), &open, nil)
			require.NoError(t, err)

			env := newMockEnv()
			env.uow.On("Begin", ctx).Return(nil).Once()
			env.expectRepositories()
			env.orderRepo.On("GetForUpdate", ctx, target.ID()).Return(target, nil).Once()
			env.uow.On("Rollback", ctx).Return(nil).Once()

			_, err = commands.NewUpdateOrderCommandHandler(env.factory).Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrObjectConflict)
			assert.Equal(t, status, target.Status())
			env.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			env.uow.AssertNotCalled(t, "Commit", mock.Anything)
			env.assertExpectations(t)
		})
	}
}

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(id, nil, nil)
	require.NoError(t, err)

	env := newMockEnv()
	env.uow.On("Begin", ctx).Return(nil).Once()
	env.expectRepositories()
	env.orderRepo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
	env.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = commands.NewUpdateOrderCommandHandler(env.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	env.assertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_CommitFails(t *testing.T) {
	ctx := t.Context()
	target := existingOrder(t, order.New)
	cmd, err := commands.NewUpdateOrderCommand(target.ID(), nil, nil)
	require.NoError(t, err)

	env := newMockEnv()
	env.uow.On("Begin", ctx).Return(nil).Once()
	env.expectRepositories()
	env.orderRepo.On("GetForUpdate", ctx, target.ID()).Return(target, nil).Once()
	env.itemRepo.On("ListByOrder", ctx, target.ID()).Return([]*order.Item{}, nil).Once()
	env.orderRepo.On("Update", ctx, target).Return(nil).Once()
	env.uow.On("Commit", ctx).Return(assert.AnError).Once()
	env.uow.On("Rollback", ctx).Return(nil).Once()

	updated, err := commands.NewUpdateOrderCommandHandler(env.factory).Handle(ctx, cmd)

	assert.Nil(t, updated)
	require.ErrorIs(t, err, assert.AnError)
	env.assertExpectations(t)
}
