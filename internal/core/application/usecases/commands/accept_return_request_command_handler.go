package commands

import (
	"context"
	"time"

	"amo/internal/core/domain/model/asset"
)

// AcceptReturnRequestCommandHandler handles administrators accepting return
// requests. Completion touches three aggregates: the request records the
// return, the assignment closes, and the asset goes back to Available. All
// three writes share one transaction.
type AcceptReturnRequestCommandHandler struct {
	uowFactory ReturnRequestUoWFactory
}

// NewAcceptReturnRequestCommandHandler creates a handler for return request acceptance.
func NewAcceptReturnRequestCommandHandler(uowFactory ReturnRequestUoWFactory) AcceptReturnRequestCommandHandler {
	return AcceptReturnRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return request acceptance command.
// Fails with an object-not-found error when the request does not exist and
// with a conflict error when it was already completed.
func (h AcceptReturnRequestCommandHandler) Handle(ctx context.Context, cmd AcceptReturnRequestCommand) (*ReturnRequestResult, error) {
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

	requestRepo := uow.ReturnRequestRepository()
	aggregate, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return nil, err
	}

	assignmentRepo := uow.AssignmentRepository()
	owner, err := assignmentRepo.Get(ctx, aggregate.AssignmentID())
	if err != nil {
		return nil, err
	}

	assetRepo := uow.AssetRepository()
	target, err := assetRepo.Get(ctx, owner.AssetID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Complete(cmd.UserAcceptID(), time.Now()); err != nil {
		return nil, err
	}

	owner.Close()

	if err = target.SetState(asset.Available); err != nil {
		return nil, err
	}

	if err = requestRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = assignmentRepo.Update(ctx, owner); err != nil {
		return nil, err
	}

	if err = assetRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newReturnRequestResult(aggregate), nil
}
