package commands

import (
	"context"
)

// UpdateAssetCommandHandler handles the business logic for asset updates.
// Only name, specification, installed date and state can change; the update
// timestamp is refreshed by the aggregate.
type UpdateAssetCommandHandler struct {
	uowFactory AssetUoWFactory
}

// NewUpdateAssetCommandHandler creates a handler for asset update operations.
func NewUpdateAssetCommandHandler(uowFactory AssetUoWFactory) UpdateAssetCommandHandler {
	return UpdateAssetCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the asset update command.
// Fails with an object-not-found error when no asset with the given id exists.
func (h UpdateAssetCommandHandler) Handle(ctx context.Context, cmd UpdateAssetCommand) (*AssetResult, error) {
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

	assetRepo := uow.AssetRepository()
	aggregate, err := assetRepo.Get(ctx, cmd.AssetID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateDetails(cmd.Name(), cmd.Specification(), cmd.InstalledDate(), cmd.State()); err != nil {
		return nil, err
	}

	if err = assetRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newAssetResult(aggregate), nil
}
