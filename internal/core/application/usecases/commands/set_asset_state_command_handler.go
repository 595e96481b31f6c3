package commands

import (
	"context"
)

// SetAssetStateCommandHandler handles direct asset state changes, such as
// moving an asset to Waiting For Recycle or back to Available.
type SetAssetStateCommandHandler struct {
	uowFactory AssetUoWFactory
}

// NewSetAssetStateCommandHandler creates a handler for asset state changes.
func NewSetAssetStateCommandHandler(uowFactory AssetUoWFactory) SetAssetStateCommandHandler {
	return SetAssetStateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the state change command.
// Fails with an object-not-found error when no asset with the given id exists.
func (h SetAssetStateCommandHandler) Handle(ctx context.Context, cmd SetAssetStateCommand) (*AssetResult, error) {
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

	if err = aggregate.SetState(cmd.State()); err != nil {
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
