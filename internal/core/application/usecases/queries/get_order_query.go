package queries

import (
	"errors"
	"time"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order in full detail for a participant.
// Only the order's vendor or supplier may see it.
type GetOrderQuery struct {
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order's details.
func NewGetOrderQuery(orderID kernel.UUID, actorID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := actorID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the requesting account's identifier.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

// OrderLineResponse is one line of an order's detail view.
type OrderLineResponse struct {
	MaterialID     kernel.UUID
	MaterialName   string
	Quantity       int
	UnitPricePaise int64
}

// OrderHistoryResponse is one entry of an order's status history.
type OrderHistoryResponse struct {
	Status string
	At     time.Time
	Note   string
}

// GetOrderQueryResponse is the full detail view of one order.
type GetOrderQueryResponse struct {
	ID               kernel.UUID
	VendorID         kernel.UUID
	SupplierID       kernel.UUID
	Status           string
	TotalAmountPaise int64
	Lines            []OrderLineResponse
	History          []OrderHistoryResponse
	CreatedAt        time.Time
	ExpectedDelivery *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
}
