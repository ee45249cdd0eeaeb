// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for the read side of the CQRS architecture.
// Queries bypass the domain model and read projections straight from storage.
package queries

import (
	"errors"
	"time"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/guard"
)

var (
	ErrGetActorOrdersQueryIsNotConstructed = errors.New(
		"GetActorOrdersQuery must be created via NewGetActorOrdersQuery constructor",
	)
)

// GetActorOrdersQuery retrieves the order list for one side of the
// marketplace: a vendor sees orders they placed, a supplier sees orders
// placed against them.
type GetActorOrdersQuery struct {
	actorID kernel.UUID
	role    account.Role

	guard guard.ConstructorGuard
}

// NewGetActorOrdersQuery creates a query for an actor's order list.
func NewGetActorOrdersQuery(actorID kernel.UUID, role account.Role) (GetActorOrdersQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetActorOrdersQuery{}, err
	}
	if err := role.Validate(); err != nil {
		return GetActorOrdersQuery{}, err
	}

	return GetActorOrdersQuery{
		actorID: actorID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActorOrdersQueryIsNotConstructed)
}

// ActorID returns the requesting account's identifier.
func (q GetActorOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Role returns which side of the marketplace is being listed.
func (q GetActorOrdersQuery) Role() account.Role {
	return q.role
}

// OrderSummaryResponse is one row of an actor's order list. The counterparty
// is the other participant: the supplier for a vendor's list and vice versa.
type OrderSummaryResponse struct {
	ID               kernel.UUID
	Status           string
	TotalAmountPaise int64
	CounterpartyID   kernel.UUID
	CounterpartyName string
	CreatedAt        time.Time
}
