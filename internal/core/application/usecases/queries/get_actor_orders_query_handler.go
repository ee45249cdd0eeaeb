package queries

import (
	"context"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActorOrdersQueryHandler reads an actor's order list from the database.
//
// Example:
//
//	handler := NewGetActorOrdersQueryHandler(db)
//	query, _ := NewGetActorOrdersQuery(vendorID, account.RoleVendor)
//	orders, err := handler.Handle(ctx, query)
type GetActorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActorOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetActorOrdersQueryHandler(db *gorm.DB) GetActorOrdersQueryHandler {
	return GetActorOrdersQueryHandler{db: db}
}

// Handle executes the query and returns order summaries, newest first.
// The counterparty column picked depends on which side is asking.
func (h GetActorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActorOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actorColumn, counterpartyColumn := "vendor_id", "supplier_id"
	if query.Role() == account.RoleSupplier {
		actorColumn, counterpartyColumn = "supplier_id", "vendor_id"
	}

	orders := make([]OrderSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.total_amount,
			o.`+counterpartyColumn+` AS counterparty_id,
			u.fullname AS counterparty_name,
			o.created_at
		FROM orders o
		JOIN users u ON u.id = o.`+counterpartyColumn+`
		WHERE o.`+actorColumn+` = ?
		ORDER BY o.created_at DESC
	`, query.ActorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary OrderSummaryResponse
		var id, counterpartyID uuid.UUID

		err = rows.Scan(
			&id,
			&summary.Status,
			&summary.TotalAmountPaise,
			&counterpartyID,
			&summary.CounterpartyName,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID

		cpID, idErr := kernel.UUIDFromBytes(counterpartyID[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.CounterpartyID = cpID

		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
