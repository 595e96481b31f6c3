package commands

import (
	"context"

	"amo/internal/core/domain/model/asset"
)

// DeleteAssignmentCommandHandler handles the business logic for assignment
// removal. Removing an assignment frees its asset, so the asset returns to
// Available in the same transaction.
type DeleteAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewDeleteAssignmentCommandHandler creates a handler for assignment removal.
func NewDeleteAssignmentCommandHandler(uowFactory AssignmentUoWFactory) DeleteAssignmentCommandHandler {
	return DeleteAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment removal command.
// Fails with an object-not-found error when the assignment does not exist.
func (h DeleteAssignmentCommandHandler) Handle(ctx context.Context, cmd DeleteAssignmentCommand) error {
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

	assignmentRepo := uow.AssignmentRepository()
	aggregate, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	assetRepo := uow.AssetRepository()
	target, err := assetRepo.Get(ctx, aggregate.AssetID())
	if err != nil {
		return err
	}

	if err = assignmentRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = target.SetState(asset.Available); err != nil {
		return err
	}

	if err = assetRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
