package assignment

import (
	"errors"
	"fmt"
	"time"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/errs"
)

// NoteMaxLength is the maximum number of characters allowed in an
// assignment note.
const NoteMaxLength = 1000

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance was not
	// created through the NewAssignment or RestoreAssignment factory methods.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
)

// Assignment is the aggregate root linking an asset to the user it is
// handed out to.
//
// Assignment follows these invariants:
//   - Must have valid identifiers for itself, the asset, the assignee and
//     the assigning administrator
//   - Note must not exceed NoteMaxLength characters
//   - At most one live return request may be linked at a time
//   - An assignment is soft-closed (active=false) rather than deleted when a
//     return completes, preserving assignment history
type Assignment struct {
	id              kernel.UUID
	assetID         kernel.UUID
	userID          kernel.UUID
	creatorID       kernel.UUID
	assignedDate    time.Time
	note            string
	state           State
	returnRequestID *kernel.UUID
	createdDate     time.Time
	updatedDate     time.Time
	active          bool

	isConstructed bool
}

// NewAssignment creates a new Assignment with validation.
// The assignment starts in WaitingAccept, is active, and carries no linked
// return request.
func NewAssignment(
	id kernel.UUID,
	assetID kernel.UUID,
	userID kernel.UUID,
	creatorID kernel.UUID,
	assignedDate time.Time,
	note string,
) (*Assignment, error) {
	now := time.Now()
	a := &Assignment{
		state:         WaitingAccept,
		assignedDate:  assignedDate,
		createdDate:   now,
		updatedDate:   now,
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setAssetID(assetID),
		a.setUserID(userID),
		a.setCreatorID(creatorID),
		a.setNote(note),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persisted state.
func RestoreAssignment(
	id kernel.UUID,
	assetID kernel.UUID,
	userID kernel.UUID,
	creatorID kernel.UUID,
	assignedDate time.Time,
	note string,
	state State,
	returnRequestID *kernel.UUID,
	createdDate time.Time,
	updatedDate time.Time,
	active bool,
) (*Assignment, error) {
	a, err := NewAssignment(id, assetID, userID, creatorID, assignedDate, note)
	if err != nil {
		return nil, err
	}
	if err = state.Validate(); err != nil {
		return nil, err
	}

	a.state = state
	a.returnRequestID = returnRequestID
	a.createdDate = createdDate
	a.updatedDate = updatedDate
	a.active = active
	return a, nil
}

// Validate ensures the Assignment instance was properly constructed through a factory method.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two assignments by their unique identifiers.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// AssetID returns the identifier of the assigned asset.
func (a *Assignment) AssetID() kernel.UUID {
	return a.assetID
}

// UserID returns the identifier of the assignee.
func (a *Assignment) UserID() kernel.UUID {
	return a.userID
}

// CreatorID returns the identifier of the assigning administrator.
func (a *Assignment) CreatorID() kernel.UUID {
	return a.creatorID
}

// AssignedDate returns the date the asset was assigned.
func (a *Assignment) AssignedDate() time.Time {
	return a.assignedDate
}

// Note returns the free-form note attached to the assignment.
func (a *Assignment) Note() string {
	return a.note
}

// State returns the current state of the assignment.
func (a *Assignment) State() State {
	return a.state
}

// ReturnRequestID returns the identifier of the linked live return request.
// Returns nil when no return request is open.
func (a *Assignment) ReturnRequestID() *kernel.UUID {
	return a.returnRequestID
}

// CreatedDate returns when the assignment was created.
func (a *Assignment) CreatedDate() time.Time {
	return a.createdDate
}

// UpdatedDate returns when the assignment was last modified.
func (a *Assignment) UpdatedDate() time.Time {
	return a.updatedDate
}

// IsActive reports whether the assignment is live. A closed assignment stays
// in storage for history but is invisible to queries.
func (a *Assignment) IsActive() bool {
	return a.active
}

// Update replaces the assignment's asset, assignee, assigned date and note.
// When the asset reference changes, the caller is responsible for driving
// the corresponding asset state transitions within the same transaction.
func (a *Assignment) Update(assetID kernel.UUID, userID kernel.UUID, assignedDate time.Time, note string) error {
	if err := errors.Join(
		a.setAssetID(assetID),
		a.setUserID(userID),
		a.setNote(note),
	); err != nil {
		return err
	}

	a.assignedDate = assignedDate
	a.updatedDate = time.Now()
	return nil
}

// Accept transitions the assignment to Accepted.
//
// Accepting an already-accepted assignment is a no-op: it returns false
// without error and leaves state unchanged. Returns true when the transition
// happened.
func (a *Assignment) Accept() (bool, error) {
	if err := a.state.Validate(); err != nil {
		return false, err
	}
	if a.state == Accepted {
		return false, nil
	}

	a.state = Accepted
	a.updatedDate = time.Now()
	return true, nil
}

// LinkReturnRequest attaches a live return request to the assignment.
// Fails with a conflict error when another return request is already open.
func (a *Assignment) LinkReturnRequest(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	if a.returnRequestID != nil {
		return errs.NewConflictErrorWithCause(
			"return request",
			fmt.Errorf("assignment %s already has an open return request", a.id),
		)
	}

	a.returnRequestID = &requestID
	a.updatedDate = time.Now()
	return nil
}

// UnlinkReturnRequest detaches the live return request, if any.
func (a *Assignment) UnlinkReturnRequest() {
	a.returnRequestID = nil
	a.updatedDate = time.Now()
}

// Close soft-closes the assignment when its return request completes.
// The record remains in storage for assignment history.
func (a *Assignment) Close() {
	a.active = false
	a.updatedDate = time.Now()
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setAssetID(assetID kernel.UUID) error {
	if err := assetID.Validate(); err != nil {
		return err
	}
	a.assetID = assetID
	return nil
}

func (a *Assignment) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	a.userID = userID
	return nil
}

func (a *Assignment) setCreatorID(creatorID kernel.UUID) error {
	if err := creatorID.Validate(); err != nil {
		return err
	}
	a.creatorID = creatorID
	return nil
}

func (a *Assignment) setNote(note string) error {
	if len([]rune(note)) > NoteMaxLength {
		return errs.NewValueIsOutOfRangeError("note length", len([]rune(note)), 0, NoteMaxLength)
	}
	a.note = note
	return nil
}
