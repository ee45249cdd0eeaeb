package commands

import (
	"context"
	"time"

	"supplymitra/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
// Loads the order, resolves the actor's role from the order's participants,
// applies the transition through the aggregate, and persists the result with
// a compare-and-set on the previous status.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, supplierID, order.Confirmed, "")
//	updated, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// Requires an OrderUoWFactory for transactional persistence.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command and returns the updated order.
//
// All authorization and transition rules live in the aggregate: a requester
// who is not a participant gets a ForbiddenError, a participant whose role
// may not perform the move gets a ForbiddenError, and an illegal status pair
// gets an InvalidTransitionError listing the allowed next statuses. The
// conditional UpdateStatus write ensures that of two concurrent conflicting
// transitions exactly one wins.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	actor, err := aggregate.RoleOf(cmd.ActorID())
	if err != nil {
		return nil, err
	}

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Target(), actor, cmd.Note(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate, previous); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
