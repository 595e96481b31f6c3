package commands

import (
	"errors"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/guard"
)

var (
	ErrCreateReturnRequestCommandIsNotConstructed = errors.New(
		"CreateReturnRequestCommand must be created via NewCreateReturnRequestCommand constructor",
	)
)

// CreateReturnRequestCommand represents a request to open the return workflow
// for an assignment.
type CreateReturnRequestCommand struct { //nolint:recvcheck //using for validation
	requestID     kernel.UUID
	assignmentID  kernel.UUID
	userRequestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateReturnRequestCommand creates a command to open a return request.
func NewCreateReturnRequestCommand(
	requestID kernel.UUID,
	assignmentID kernel.UUID,
	userRequestID kernel.UUID,
) (CreateReturnRequestCommand, error) {
	cmd := CreateReturnRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setAssignmentID(assignmentID),
		cmd.setUserRequestID(userRequestID),
	); err != nil {
		return CreateReturnRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReturnRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateReturnRequestCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the new return request.
func (c CreateReturnRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// AssignmentID returns the identifier of the assignment being returned.
func (c CreateReturnRequestCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// UserRequestID returns the identifier of the user opening the request.
func (c CreateReturnRequestCommand) UserRequestID() kernel.UUID {
	return c.userRequestID
}

func (c *CreateReturnRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *CreateReturnRequestCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}

func (c *CreateReturnRequestCommand) setUserRequestID(userRequestID kernel.UUID) error {
	if err := userRequestID.Validate(); err != nil {
		return err
	}
	c.userRequestID = userRequestID
	return nil
}
