package orderrepo

import (
	"context"
	"errors"
	"time"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/core/domain/model/order"
	"supplymitra/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items and initial history entry.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapStorageError("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its line items and full history.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, mapStorageError("get order", err)
	}

	return toDomain(dto)
}

// UpdateStatus persists the aggregate's latest transition with a
// compare-and-set on the previous status. The status column update and the
// new history row share the repository's transaction, so they land together
// or not at all. When the conditional update matches no row the order was
// either removed (not found) or already moved by a concurrent transition;
// the error distinguishes the two from the row's current state.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), expectedStatus.String()).
		Updates(map[string]any{
			"status":       aggregate.Status().String(),
			"delivered_at": aggregate.DeliveredAt(),
			"cancelled_at": aggregate.CancelledAt(),
		})
	if result.Error != nil {
		return mapStorageError("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		return r.explainLostWrite(ctx, aggregate)
	}

	entry := aggregate.LastHistoryEntry()
	historyDTO := HistoryDTO{
		OrderID: aggregate.ID().Bytes(),
		Seq:     len(aggregate.History()) - 1,
		Status:  entry.Status().String(),
		At:      entry.At(),
		Note:    entry.Note(),
	}
	if err := r.db.WithContext(ctx).Create(&historyDTO).Error; err != nil {
		return mapStorageError("append order history", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllPendingBefore retrieves orders still pending that were created
// before the cutoff.
func (r *GormOrderRepository) GetAllPendingBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Find(&dtos, "status = ? AND created_at < ?", order.Pending.String(), cutoff).Error
	if err != nil {
		return nil, mapStorageError("get stale pending orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// explainLostWrite reports why a conditional status update matched no row.
func (r *GormOrderRepository) explainLostWrite(ctx context.Context, aggregate *order.Order) error {
	var current string
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("status").
		Where("id = ?", aggregate.ID().Bytes()).
		Take(&current).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return mapStorageError("update order status", err)
	}

	status, err := order.StatusFromString(current)
	if err != nil {
		return err
	}
	return errs.NewInvalidTransitionError(
		status.String(), aggregate.Status().String(), status.AllowedNextStrings())
}

// mapStorageError turns storage timeouts into UnavailableError so callers
// can answer with a retryable failure instead of an internal one.
func mapStorageError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewUnavailableError(op, err)
	}
	return err
}
