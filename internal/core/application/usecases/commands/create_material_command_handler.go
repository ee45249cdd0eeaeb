package commands

import (
	"context"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/core/domain/model/material"
	"supplymitra/internal/pkg/errs"
)

// CreateMaterialCommandHandler handles new catalog listings.
type CreateMaterialCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
}

// NewCreateMaterialCommandHandler creates a handler for catalog listing.
// Uses the order-placement unit of work because it needs both the account
// repository (to verify the supplier) and the material repository.
func NewCreateMaterialCommandHandler(uowFactory PlaceOrderUoWFactory) CreateMaterialCommandHandler {
	return CreateMaterialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle lists a new material in the supplier's catalog and returns it.
// Only accounts with the supplier role may list materials.
func (h *CreateMaterialCommandHandler) Handle(
	ctx context.Context,
	cmd CreateMaterialCommand,
) (*material.Material, error) {
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

	supplier, err := uow.AccountRepository().GetUser(ctx, cmd.SupplierID())
	if err != nil {
		return nil, err
	}
	if supplier.Role() != account.RoleSupplier {
		return nil, errs.NewForbiddenError(supplier.Role().String(), "list materials")
	}

	aggregate, err := material.NewMaterial(
		cmd.MaterialID(),
		cmd.SupplierID(),
		cmd.Name(),
		cmd.PricePerUnit(),
		cmd.AvailableQuantity(),
		cmd.Unit(),
		cmd.Category(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.MaterialRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
