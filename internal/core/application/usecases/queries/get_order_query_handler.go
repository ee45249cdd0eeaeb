package queries

import (
	"context"
	"database/sql"
	"errors"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order's full detail from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order with its lines and
// history. Returns ObjectNotFoundError for a missing order and
// ForbiddenError when the requester is neither participant.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.readOrderRow(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.Lines, err = h.readLines(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.History, err = h.readHistory(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readOrderRow(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse
	var id, vendorID, supplierID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vendor_id,
			supplier_id,
			status,
			total_amount,
			created_at,
			expected_delivery,
			delivered_at,
			cancelled_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&vendorID,
		&supplierID,
		&resp.Status,
		&resp.TotalAmountPaise,
		&resp.CreatedAt,
		&resp.ExpectedDelivery,
		&resp.DeliveredAt,
		&resp.CancelledAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.SupplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	actor := query.ActorID()
	if !resp.VendorID.IsEqual(actor) && !resp.SupplierID.IsEqual(actor) {
		return GetOrderQueryResponse{}, errs.NewForbiddenError(actor.String(), "view order")
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderLineResponse, error) {
	lines := make([]OrderLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.material_id,
			m.name,
			i.quantity,
			i.unit_price
		FROM order_items i
		JOIN materials m ON m.id = i.material_id
		WHERE i.order_id = ?
		ORDER BY m.name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var materialID uuid.UUID

		err = rows.Scan(&materialID, &line.MaterialName, &line.Quantity, &line.UnitPricePaise)
		if err != nil {
			return nil, err
		}

		if line.MaterialID, err = kernel.UUIDFromBytes(materialID[:]); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func (h GetOrderQueryHandler) readHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderHistoryResponse, error) {
	history := make([]OrderHistoryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, at, note
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY seq
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry OrderHistoryResponse
		if err = rows.Scan(&entry.Status, &entry.At, &entry.Note); err != nil {
			return nil, err
		}
		history = append(history, entry)
	}

	return history, rows.Err()
}
