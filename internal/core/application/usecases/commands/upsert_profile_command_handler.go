package commands

import (
	"context"
	"errors"
	"time"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/pkg/errs"
)

// UpsertProfileCommandHandler registers new accounts and updates existing
// profiles.
type UpsertProfileCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpsertProfileCommandHandler creates a handler for profile maintenance.
func NewUpsertProfileCommandHandler(uowFactory AccountUoWFactory) UpsertProfileCommandHandler {
	return UpsertProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the account if unknown, otherwise updates the mutable
// part of the profile. Email and role are fixed at registration; a role
// change request on an existing account is rejected because an account's
// side of the marketplace never changes.
func (h *UpsertProfileCommandHandler) Handle(
	ctx context.Context,
	cmd UpsertProfileCommand,
) (*account.User, error) {
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
	user, err := accountRepo.GetUser(ctx, cmd.UserID())
	if err != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, err
		}

		user, err = account.NewUser(cmd.UserID(), cmd.Fullname(), cmd.Email(),
			cmd.Phone(), cmd.Role(), time.Now().UTC())
		if err != nil {
			return nil, err
		}
		if err = accountRepo.AddUser(ctx, user); err != nil {
			return nil, err
		}
	} else {
		if user.Role() != cmd.Role() {
			return nil, errs.NewValueIsInvalidError("role: cannot be changed after registration")
		}
		user.UpdateProfile(cmd.Fullname(), cmd.Phone())
		if err = accountRepo.UpdateUser(ctx, user); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
