package commands

import (
	"context"

	"supplymitra/internal/core/domain/model/material"
	"supplymitra/internal/pkg/errs"
)

// UpdateMaterialCommandHandler handles changes to existing catalog listings.
type UpdateMaterialCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateMaterialCommandHandler creates a handler for listing updates.
func NewUpdateMaterialCommandHandler(uowFactory CatalogUoWFactory) UpdateMaterialCommandHandler {
	return UpdateMaterialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle updates a catalog listing and returns the updated material.
// A supplier may only change their own listings.
func (h *UpdateMaterialCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateMaterialCommand,
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

	materialRepo := uow.MaterialRepository()
	aggregate, err := materialRepo.Get(ctx, cmd.MaterialID())
	if err != nil {
		return nil, err
	}
	if !aggregate.IsOwnedBy(cmd.SupplierID()) {
		return nil, errs.NewForbiddenError(cmd.SupplierID().String(), "update material")
	}

	if err = aggregate.UpdateListing(cmd.Name(), cmd.PricePerUnit(), cmd.AvailableQuantity()); err != nil {
		return nil, err
	}

	if err = materialRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
