package commands

import (
	"context"
)

// AcceptAssignmentCommandHandler handles users accepting their assignments.
// Accepting an already-accepted assignment is a no-op, not an error, so a
// repeated click on a stale page changes nothing.
type AcceptAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAcceptAssignmentCommandHandler creates a handler for assignment acceptance.
func NewAcceptAssignmentCommandHandler(uowFactory AssignmentUoWFactory) AcceptAssignmentCommandHandler {
	return AcceptAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
// Returns a nil result without error when the assignment was already
// accepted. Fails with an object-not-found error when the assignment does
// not exist.
func (h AcceptAssignmentCommandHandler) Handle(ctx context.Context, cmd AcceptAssignmentCommand) (*AssignmentResult, error) {
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

	accepted, err := aggregate.Accept()
	if err != nil {
		return nil, err
	}
	if !accepted {
		return nil, nil
	}

	if err = assignmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newAssignmentResult(aggregate), nil
}
