package commands

import (
	"errors"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/guard"
)

var (
	ErrCancelReturnRequestCommandIsNotConstructed = errors.New(
		"CancelReturnRequestCommand must be created via NewCancelReturnRequestCommand constructor",
	)
)

// CancelReturnRequestCommand represents a request to withdraw a pending
// return request, leaving its assignment live.
type CancelReturnRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelReturnRequestCommand creates a command to cancel a return request.
func NewCancelReturnRequestCommand(requestID kernel.UUID) (CancelReturnRequestCommand, error) {
	cmd := CancelReturnRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRequestID(requestID); err != nil {
		return CancelReturnRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelReturnRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelReturnRequestCommandIsNotConstructed)
}

// RequestID returns the identifier of the return request to cancel.
func (c CancelReturnRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *CancelReturnRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}
