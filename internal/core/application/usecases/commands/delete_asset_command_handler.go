package commands

import (
	"context"
)

// DeleteAssetCommandHandler handles the business logic for asset removal.
// An asset that any assignment has ever referenced cannot be deleted; its
// history must stay resolvable.
type DeleteAssetCommandHandler struct {
	uowFactory AssetUoWFactory
}

// NewDeleteAssetCommandHandler creates a handler for asset removal operations.
func NewDeleteAssetCommandHandler(uowFactory AssetUoWFactory) DeleteAssetCommandHandler {
	return DeleteAssetCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the asset removal command.
// Fails with an object-not-found error when the asset does not exist and with
// a conflict error when an assignment references it.
func (h DeleteAssetCommandHandler) Handle(ctx context.Context, cmd DeleteAssetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assetRepo := uow.AssetRepository()
	aggregate, err := assetRepo.Get(ctx, cmd.AssetID())
	if err != nil {
		return err
	}

	referenced, err := uow.AssignmentRepository().ExistsForAsset(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if referenced {
		return errAssetReferencedByAssignment(aggregate.ID())
	}

	if err = assetRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
