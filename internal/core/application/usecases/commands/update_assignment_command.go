package commands

import (
	"errors"
	"time"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/guard"
)

var (
	ErrUpdateAssignmentCommandIsNotConstructed = errors.New(
		"UpdateAssignmentCommand must be created via NewUpdateAssignmentCommand constructor",
	)
)

// UpdateAssignmentCommand represents a request to change an assignment's
// asset, user, date or note while it is still waiting for acceptance.
type UpdateAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	assetID      kernel.UUID
	userID       kernel.UUID
	assignedDate time.Time
	note         string

	guard guard.ConstructorGuard
}

// NewUpdateAssignmentCommand creates a command to update an assignment.
func NewUpdateAssignmentCommand(
	assignmentID kernel.UUID,
	assetID kernel.UUID,
	userID kernel.UUID,
	assignedDate time.Time,
	note string,
) (UpdateAssignmentCommand, error) {
	cmd := UpdateAssignmentCommand{
		assignedDate: assignedDate,
		note:         note,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setAssetID(assetID),
		cmd.setUserID(userID),
	); err != nil {
		return UpdateAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to update.
func (c UpdateAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// AssetID returns the identifier of the asset the assignment should cover.
func (c UpdateAssignmentCommand) AssetID() kernel.UUID {
	return c.assetID
}

// UserID returns the identifier of the receiving user.
func (c UpdateAssignmentCommand) UserID() kernel.UUID {
	return c.userID
}

// AssignedDate returns the date the assignment takes effect.
func (c UpdateAssignmentCommand) AssignedDate() time.Time {
	return c.assignedDate
}

// Note returns the optional note attached to the assignment.
func (c UpdateAssignmentCommand) Note() string {
	return c.note
}

func (c *UpdateAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}

func (c *UpdateAssignmentCommand) setAssetID(assetID kernel.UUID) error {
	if err := assetID.Validate(); err != nil {
		return err
	}
	c.assetID = assetID
	return nil
}

func (c *UpdateAssignmentCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
