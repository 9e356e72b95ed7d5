package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/account"
)

// RegisterVendorCommandHandler persists a new vendor profile.
type RegisterVendorCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewRegisterVendorCommandHandler creates a handler for vendor registration.
func NewRegisterVendorCommandHandler(uowFactory VendorUoWFactory) RegisterVendorCommandHandler {
	return RegisterVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor registration command.
func (h *RegisterVendorCommandHandler) Handle(ctx context.Context, cmd RegisterVendorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	vendor, err := account.NewVendor(cmd.VendorID(), cmd.AccountID(), cmd.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VendorRepository().Add(ctx, vendor); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
