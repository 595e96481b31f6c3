package commands

import (
	"context"

	"amo/internal/core/domain/model/request"
)

// CreateReturnRequestCommandHandler handles opening the return workflow for
// an assignment. The new request and the link on the assignment are written
// in one transaction.
type CreateReturnRequestCommandHandler struct {
	uowFactory ReturnRequestUoWFactory
}

// NewCreateReturnRequestCommandHandler creates a handler for return request creation.
func NewCreateReturnRequestCommandHandler(uowFactory ReturnRequestUoWFactory) CreateReturnRequestCommandHandler {
	return CreateReturnRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return request creation command.
// Fails with an object-not-found error when the assignment does not exist
// and with a conflict error when the assignment already has a live return
// request.
func (h CreateReturnRequestCommandHandler) Handle(ctx context.Context, cmd CreateReturnRequestCommand) (*ReturnRequestResult, error) {
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
	owner, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return nil, err
	}

	aggregate, err := request.NewReturnRequest(cmd.RequestID(), cmd.AssignmentID(), cmd.UserRequestID())
	if err != nil {
		return nil, err
	}

	if err = owner.LinkReturnRequest(aggregate.ID()); err != nil {
		return nil, err
	}

	if err = uow.ReturnRequestRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = assignmentRepo.Update(ctx, owner); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newReturnRequestResult(aggregate), nil
}
