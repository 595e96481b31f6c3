package commands

import (
	"context"

	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/model/assignment"
)

// CreateAssignmentCommandHandler handles the business logic for assigning
// assets to users. Creating the assignment and moving the asset to Assigned
// happen in one transaction so the two can never diverge.
type CreateAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewCreateAssignmentCommandHandler creates a handler for assignment creation.
func NewCreateAssignmentCommandHandler(uowFactory AssignmentUoWFactory) CreateAssignmentCommandHandler {
	return CreateAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment creation command.
// Fails with an object-not-found error when the asset does not exist and with
// a conflict error when the asset already has a live assignment.
func (h CreateAssignmentCommandHandler) Handle(ctx context.Context, cmd CreateAssignmentCommand) (*AssignmentResult, error) {
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
	target, err := assetRepo.Get(ctx, cmd.AssetID())
	if err != nil {
		return nil, err
	}

	assignmentRepo := uow.AssignmentRepository()
	taken, err := assignmentRepo.HasActiveForAsset(ctx, target.ID())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errAssetAlreadyAssigned(target.ID())
	}

	aggregate, err := assignment.NewAssignment(
		cmd.AssignmentID(),
		cmd.AssetID(),
		cmd.UserID(),
		cmd.CreatorID(),
		cmd.AssignedDate(),
		cmd.Note(),
	)
	if err != nil {
		return nil, err
	}

	if err = assignmentRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = target.SetState(asset.Assigned); err != nil {
		return nil, err
	}

	if err = assetRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newAssignmentResult(aggregate), nil
}
