package commands

import (
	"context"
	"time"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/core/domain/model/order"
	"supplymitra/internal/core/ports"
	"supplymitra/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Validates the participants and addresses, prices every line from the
// supplier's catalog, reserves stock, and persists the order — all in a
// single transaction so a failed reservation never leaves a half-placed
// order behind.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Println(placed.TotalAmount())
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a PlaceOrderUoWFactory spanning orders, catalog, and accounts.
func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command and returns the placed order.
//
// The total amount is always computed from catalog prices at placement time;
// whatever amounts the caller might have sent upstream never reach this
// layer. Stock is reserved per line with a conditional decrement, so two
// vendors racing for the last units cannot both succeed.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
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

	accountRepo := uow.AccountRepository()
	if err := h.checkParticipants(ctx, accountRepo, cmd); err != nil {
		return nil, err
	}

	materialRepo := uow.MaterialRepository()
	lineItems := make([]order.LineItem, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		mat, err := materialRepo.Get(ctx, line.MaterialID)
		if err != nil {
			return nil, err
		}
		if !mat.IsOwnedBy(cmd.SupplierID()) {
			return nil, errs.NewValueIsInvalidError("lineItems: material " +
				mat.ID().String() + " does not belong to the supplier")
		}

		if err = materialRepo.ReserveStock(ctx, mat.ID(), line.Quantity); err != nil {
			return nil, err
		}

		item, err := order.NewLineItem(mat.ID(), line.Quantity, mat.PricePerUnit())
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.VendorID(),
		cmd.SupplierID(),
		cmd.VendorAddressID(),
		cmd.SupplierAddressID(),
		lineItems,
		cmd.ExpectedDelivery(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// checkParticipants verifies that the vendor and supplier exist with the
// roles the order requires and that each address belongs to its participant.
func (h *PlaceOrderCommandHandler) checkParticipants(
	ctx context.Context,
	accountRepo ports.AccountRepository,
	cmd PlaceOrderCommand,
) error {
	vendor, err := accountRepo.GetUser(ctx, cmd.VendorID())
	if err != nil {
		return err
	}
	if vendor.Role() != account.RoleVendor {
		return errs.NewValueIsInvalidError("vendorId: account is not a vendor")
	}

	supplier, err := accountRepo.GetUser(ctx, cmd.SupplierID())
	if err != nil {
		return err
	}
	if supplier.Role() != account.RoleSupplier {
		return errs.NewValueIsInvalidError("supplierId: account is not a supplier")
	}

	vendorAddress, err := accountRepo.GetAddress(ctx, cmd.VendorAddressID())
	if err != nil {
		return err
	}
	if !vendorAddress.IsOwnedBy(cmd.VendorID()) {
		return errs.NewValueIsInvalidError("vendorAddressId: address does not belong to the vendor")
	}

	supplierAddress, err := accountRepo.GetAddress(ctx, cmd.SupplierAddressID())
	if err != nil {
		return err
	}
	if !supplierAddress.IsOwnedBy(cmd.SupplierID()) {
		return errs.NewValueIsInvalidError("supplierAddressId: address does not belong to the supplier")
	}

	return nil
}
