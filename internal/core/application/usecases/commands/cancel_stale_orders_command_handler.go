package commands

import (
	"context"
	"errors"
	"time"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/core/domain/model/order"
	"supplymitra/internal/pkg/errs"
)

// CancelStaleOrdersCommandHandler cancels pending orders the supplier never
// confirmed within the time-to-live. Driven by the background sweep job.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale-order sweep.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every order still pending past the cutoff and returns how
// many were cancelled.
//
// The cancellation is applied with supplier authority, matching the rule
// that a supplier may cancel a pending order. Each order is written with a
// compare-and-set on pending; an order confirmed or cancelled between the
// sweep's read and write simply loses the race and is skipped.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetAllPendingBefore(ctx, now.Add(-cmd.TTL()))
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, aggregate := range stale {
		if err = aggregate.ChangeStatus(order.Cancelled, account.RoleSupplier,
			"cancelled automatically: not confirmed in time", now); err != nil {
			return 0, err
		}

		err = orderRepo.UpdateStatus(ctx, aggregate, order.Pending)
		if err != nil {
			var transitionErr *errs.InvalidTransitionError
			if errors.As(err, &transitionErr) {
				continue
			}
			return 0, err
		}
		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cancelled, nil
}
