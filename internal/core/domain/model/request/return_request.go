package request

import (
	"errors"
	"fmt"
	"time"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/errs"
)

var (
	// ErrReturnRequestIsNotConstructed is returned when a ReturnRequest instance was
	// not created through the NewReturnRequest or RestoreReturnRequest factory methods.
	ErrReturnRequestIsNotConstructed = errors.New(
		"ReturnRequest must be created via NewReturnRequest constructor")
)

// ReturnRequest is the aggregate root for a request to return an assigned
// asset. It back-references the assignment it closes.
//
// ReturnRequest follows these invariants:
//   - Must have valid identifiers for itself, the assignment and the
//     requesting user
//   - Return date and approving administrator are only set when the request
//     completes
type ReturnRequest struct {
	id            kernel.UUID
	assignmentID  kernel.UUID
	userRequestID kernel.UUID
	userAcceptID  *kernel.UUID
	returnDate    *time.Time
	state         State

	isConstructed bool
}

// NewReturnRequest creates a new ReturnRequest in WaitingForReturning.
func NewReturnRequest(id kernel.UUID, assignmentID kernel.UUID, userRequestID kernel.UUID) (*ReturnRequest, error) {
	r := &ReturnRequest{
		state:         WaitingForReturning,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setAssignmentID(assignmentID),
		r.setUserRequestID(userRequestID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReturnRequest reconstructs a ReturnRequest from persisted state.
func RestoreReturnRequest(
	id kernel.UUID,
	assignmentID kernel.UUID,
	userRequestID kernel.UUID,
	userAcceptID *kernel.UUID,
	returnDate *time.Time,
	state State,
) (*ReturnRequest, error) {
	r, err := NewReturnRequest(id, assignmentID, userRequestID)
	if err != nil {
		return nil, err
	}
	if err = state.Validate(); err != nil {
		return nil, err
	}

	r.userAcceptID = userAcceptID
	r.returnDate = returnDate
	r.state = state
	return r, nil
}

// Validate ensures the ReturnRequest instance was properly constructed through a factory method.
func (r *ReturnRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReturnRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares two return requests by their unique identifiers.
func (r *ReturnRequest) IsEqual(other *ReturnRequest) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the return request's unique identifier.
func (r *ReturnRequest) ID() kernel.UUID {
	return r.id
}

// AssignmentID returns the identifier of the assignment this request closes.
func (r *ReturnRequest) AssignmentID() kernel.UUID {
	return r.assignmentID
}

// UserRequestID returns the identifier of the user who asked to return.
func (r *ReturnRequest) UserRequestID() kernel.UUID {
	return r.userRequestID
}

// UserAcceptID returns the identifier of the administrator who approved the
// return. Returns nil until the request completes.
func (r *ReturnRequest) UserAcceptID() *kernel.UUID {
	return r.userAcceptID
}

// ReturnDate returns when the return was approved.
// Returns nil until the request completes.
func (r *ReturnRequest) ReturnDate() *time.Time {
	return r.returnDate
}

// State returns the current state of the return request.
func (r *ReturnRequest) State() State {
	return r.state
}

// Complete transitions the request to Completed, recording the approving
// administrator and the return date. Completing an already-completed request
// fails with a conflict error.
func (r *ReturnRequest) Complete(userAcceptID kernel.UUID, returnDate time.Time) error {
	if err := userAcceptID.Validate(); err != nil {
		return err
	}
	if r.state != WaitingForReturning {
		return errs.NewConflictErrorWithCause(
			"return request state",
			fmt.Errorf("%s is not a valid state to complete", r.state),
		)
	}

	r.state = Completed
	r.userAcceptID = &userAcceptID
	r.returnDate = &returnDate
	return nil
}

func (r *ReturnRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *ReturnRequest) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	r.assignmentID = assignmentID
	return nil
}

func (r *ReturnRequest) setUserRequestID(userRequestID kernel.UUID) error {
	if err := userRequestID.Validate(); err != nil {
		return err
	}
	r.userRequestID = userRequestID
	return nil
}
