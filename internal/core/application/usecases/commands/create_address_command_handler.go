package commands

import (
	"context"

	"supplymitra/internal/core/domain/model/account"
)

// CreateAddressCommandHandler handles saving user addresses.
type CreateAddressCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewCreateAddressCommandHandler creates a handler for address creation.
func NewCreateAddressCommandHandler(uowFactory AccountUoWFactory) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle saves a new address for the user and returns it.
// The user must exist; addresses cannot be created for unknown accounts.
func (h *CreateAddressCommandHandler) Handle(
	ctx context.Context,
	cmd CreateAddressCommand,
) (*account.Address, error) {
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
	if _, err := accountRepo.GetUser(ctx, cmd.UserID()); err != nil {
		return nil, err
	}

	address, err := account.NewAddress(cmd.AddressID(), cmd.UserID(), cmd.Label(), cmd.Location())
	if err != nil {
		return nil, err
	}

	if err = accountRepo.AddAddress(ctx, address); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return address, nil
}
