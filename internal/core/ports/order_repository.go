package ports

import (
	"context"
	"time"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted; cancellation is a terminal status, so the
// contract offers no removal operation.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items and the
	// initial history entry. The order must be valid and not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// line items and the full status history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus persists the aggregate's latest status transition: the
	// status change and the newly appended history entry succeed or fail
	// together. The write is conditional on the order still being in
	// expectedStatus, so two concurrent conflicting transitions cannot both
	// succeed; the loser fails with an InvalidTransitionError carrying the
	// status found in storage.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// GetAllPendingBefore retrieves orders still in the pending status that
	// were created before the cutoff. Used by the stale-order sweep.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
