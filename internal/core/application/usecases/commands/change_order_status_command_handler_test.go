package commands_test

import (
	"context"
	"testing"
	"time"

	"supplymitra/internal/core/application/usecases/commands"
	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/core/domain/model/order"
	"supplymitra/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T, vendorID, supplierID kernel.UUID) *order.Order {
	t.Helper()

	price, err := kernel.MoneyFromRupees(40)
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), 10, price)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), vendorID, supplierID,
		kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{item}, nil, time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}

func TestChangeOrderStatusCommandHandler_Handle_SupplierConfirms(t *testing.T) {
	ctx := context.Background()
	vendorID := kernel.NewUUID()
	supplierID := kernel.NewUUID()
	aggregate := newPendingOrder(t, vendorID, supplierID)

	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), supplierID, order.Confirmed, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("UpdateStatus", ctx, aggregate, order.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, updated.Status())
	require.Len(t, updated.History(), 2)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_VendorCannotConfirm(t *testing.T) {
	ctx := context.Background()
	vendorID := kernel.NewUUID()
	aggregate := newPendingOrder(t, vendorID, kernel.NewUUID())

	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), vendorID, order.Confirmed, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.Pending, aggregate.Status())
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_StrangerForbidden(t *testing.T) {
	ctx := context.Background()
	aggregate := newPendingOrder(t, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), kernel.NewUUID(), order.Cancelled, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestChangeOrderStatusCommandHandler_Handle_SkipLevelRejected(t *testing.T) {
	ctx := context.Background()
	supplierID := kernel.NewUUID()
	aggregate := newPendingOrder(t, kernel.NewUUID(), supplierID)

	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), supplierID, order.Delivered, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var transitionErr *errs.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "pending", transitionErr.From)
	assert.Equal(t, "delivered", transitionErr.To)
	assert.ElementsMatch(t, []string{"confirmed", "cancelled"}, transitionErr.Allowed)
}

func TestChangeOrderStatusCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := context.Background()
	supplierID := kernel.NewUUID()
	aggregate := newPendingOrder(t, kernel.NewUUID(), supplierID)

	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), supplierID, order.Confirmed, "")
	require.NoError(t, err)

	// Someone else completed a conflicting transition between read and write.
	raceErr := errs.NewInvalidTransitionError("cancelled", "confirmed", nil)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("UpdateStatus", ctx, aggregate, order.Pending).Return(raceErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
