package commands

import (
	"context"

	"amo/internal/core/domain/model/asset"
)

// UpdateAssignmentCommandHandler handles the business logic for assignment
// updates. When the update points the assignment at a different asset, the
// old asset returns to Available and the new one moves to Assigned in the
// same transaction.
type UpdateAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewUpdateAssignmentCommandHandler creates a handler for assignment updates.
func NewUpdateAssignmentCommandHandler(uowFactory AssignmentUoWFactory) UpdateAssignmentCommandHandler {
	return UpdateAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment update command.
// Fails with an object-not-found error when the assignment or the target
// asset does not exist, and with a conflict error when the target asset
// already has a live assignment of its own.
func (h UpdateAssignmentCommandHandler) Handle(ctx context.Context, cmd UpdateAssignmentCommand) (*AssignmentResult, error) {
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

	assignmentRepo := uow.AssignmentRepository()
	aggregate, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return nil, err
	}

	assetRepo := uow.AssetRepository()
	if !aggregate.AssetID().IsEqual(cmd.AssetID()) {
		previous, err := assetRepo.Get(ctx, aggregate.AssetID())
		if err != nil {
			return nil, err
		}

		next, err := assetRepo.Get(ctx, cmd.AssetID())
		if err != nil {
			return nil, err
		}

		taken, err := assignmentRepo.HasActiveForAsset(ctx, next.ID())
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errAssetAlreadyAssigned(next.ID())
		}

		if err = previous.SetState(asset.Available); err != nil {
			return nil, err
		}
		if err = next.SetState(asset.Assigned); err != nil {
			return nil, err
		}

		if err = assetRepo.Update(ctx, previous); err != nil {
			return nil, err
		}
		if err = assetRepo.Update(ctx, next); err != nil {
			return nil, err
		}
	}

	if err = aggregate.Update(cmd.AssetID(), cmd.UserID(), cmd.AssignedDate(), cmd.Note()); err != nil {
		return nil, err
	}

	if err = assignmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newAssignmentResult(aggregate), nil
}
