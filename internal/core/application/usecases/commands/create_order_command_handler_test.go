package commands_test

import (
	"errors"
	"testing"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Alice", "alice@example.com", "12 Oak Avenue", validItems(),
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	orderUoW := new(MockOrderUoW)
	itemsUoW := new(MockOrderUoW)
	mock.InOrder(
		orderUoW.On("Begin", ctx).Return(nil).Once(),
		orderUoW.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		orderUoW.On("Commit", ctx).Return(nil).Once(),
		orderUoW.On("Rollback", ctx).Return(nil).Once(),
		itemsUoW.On("Begin", ctx).Return(nil).Once(),
		itemsUoW.On("OrderRepository").Return(repo).Once(),
		repo.On("AddItems", mock.Anything, cmd.OrderID(), cmd.Items()).Return(nil).Once(),
		itemsUoW.On("Commit", ctx).Return(nil).Once(),
		itemsUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(orderUoW).Once()
	factory.On("Create").Return(itemsUoW).Once()

	publisher := new(MockOrderPublisher)
	publisher.On("Publish", ctx, ports.EventOrderCreated, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	orderUoW.AssertExpectations(t)
	itemsUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	publisher := new(MockOrderPublisher)
	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.NotErrorIs(t, err, commands.ErrOrderItemsIncomplete)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ItemsIncomplete(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	orderUoW := new(MockOrderUoW)
	itemsUoW := new(MockOrderUoW)
	mock.InOrder(
		orderUoW.On("Begin", ctx).Return(nil).Once(),
		orderUoW.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		orderUoW.On("Commit", ctx).Return(nil).Once(),
		orderUoW.On("Rollback", ctx).Return(nil).Once(),
		itemsUoW.On("Begin", ctx).Return(nil).Once(),
		itemsUoW.On("OrderRepository").Return(repo).Once(),
		repo.On("AddItems", mock.Anything, cmd.OrderID(), cmd.Items()).Return(errors.New("insert failed")).Once(),
		itemsUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(orderUoW).Once()
	factory.On("Create").Return(itemsUoW).Once()

	publisher := new(MockOrderPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOrderItemsIncomplete)

	var incomplete *commands.OrderItemsIncompleteError
	require.ErrorAs(t, err, &incomplete)
	require.Equal(t, cmd.OrderID().String(), incomplete.OrderID)

	// The order itself stays committed; only the realtime push is skipped.
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PublishFailureIsIgnored(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("AddItems", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(repo).Twice()
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Twice()

	publisher := new(MockOrderPublisher)
	publisher.On("Publish", ctx, ports.EventOrderCreated, mock.Anything).Return(errors.New("broker down")).Once()

	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	publisher.AssertExpectations(t)
}
