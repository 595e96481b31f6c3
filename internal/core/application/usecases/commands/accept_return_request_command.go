package commands

import (
	"errors"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/guard"
)

var (
	ErrAcceptReturnRequestCommandIsNotConstructed = errors.New(
		"AcceptReturnRequestCommand must be created via NewAcceptReturnRequestCommand constructor",
	)
)

// AcceptReturnRequestCommand represents an administrator accepting a return
// request, completing the assignment's lifecycle.
type AcceptReturnRequestCommand struct { //nolint:recvcheck //using for validation
	requestID    kernel.UUID
	userAcceptID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptReturnRequestCommand creates a command to accept a return request.
func NewAcceptReturnRequestCommand(requestID kernel.UUID, userAcceptID kernel.UUID) (AcceptReturnRequestCommand, error) {
	cmd := AcceptReturnRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setUserAcceptID(userAcceptID),
	); err != nil {
		return AcceptReturnRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptReturnRequestCommand) Validate() error {
	return c.guard.Validate(ErrAcceptReturnRequestCommandIsNotConstructed)
}

// RequestID returns the identifier of the return request to accept.
func (c AcceptReturnRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// UserAcceptID returns the identifier of the accepting administrator.
func (c AcceptReturnRequestCommand) UserAcceptID() kernel.UUID {
	return c.userAcceptID
}

func (c *AcceptReturnRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *AcceptReturnRequestCommand) setUserAcceptID(userAcceptID kernel.UUID) error {
	if err := userAcceptID.Validate(); err != nil {
		return err
	}
	c.userAcceptID = userAcceptID
	return nil
}
