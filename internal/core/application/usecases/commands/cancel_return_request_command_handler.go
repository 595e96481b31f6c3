package commands

import (
	"context"
)

// CancelReturnRequestCommandHandler handles withdrawing a pending return
// request. The request disappears and the assignment drops its link, leaving
// the assignment and the asset as they were before the request was opened.
type CancelReturnRequestCommandHandler struct {
	uowFactory ReturnRequestUoWFactory
}

// NewCancelReturnRequestCommandHandler creates a handler for return request cancellation.
func NewCancelReturnRequestCommandHandler(uowFactory ReturnRequestUoWFactory) CancelReturnRequestCommandHandler {
	return CancelReturnRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return request cancellation command.
// Fails with an object-not-found error when the request does not exist.
func (h CancelReturnRequestCommandHandler) Handle(ctx context.Context, cmd CancelReturnRequestCommand) error {
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

	requestRepo := uow.ReturnRequestRepository()
	aggregate, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	assignmentRepo := uow.AssignmentRepository()
	owner, err := assignmentRepo.Get(ctx, aggregate.AssignmentID())
	if err != nil {
		return err
	}

	owner.UnlinkReturnRequest()

	if err = assignmentRepo.Update(ctx, owner); err != nil {
		return err
	}

	if err = requestRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
