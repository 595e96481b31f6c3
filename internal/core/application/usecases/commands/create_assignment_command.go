package commands

import (
	"errors"
	"time"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/guard"
)

var (
	ErrCreateAssignmentCommandIsNotConstructed = errors.New(
		"CreateAssignmentCommand must be created via NewCreateAssignmentCommand constructor",
	)
)

// CreateAssignmentCommand represents a request to hand an asset to a user.
type CreateAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	assetID      kernel.UUID
	userID       kernel.UUID
	creatorID    kernel.UUID
	assignedDate time.Time
	note         string

	guard guard.ConstructorGuard
}

// NewCreateAssignmentCommand creates a command to assign an asset to a user.
// Validates all identifiers. The note may be empty; its length limit is
// enforced by the assignment aggregate.
func NewCreateAssignmentCommand(
	assignmentID kernel.UUID,
	assetID kernel.UUID,
	userID kernel.UUID,
	creatorID kernel.UUID,
	assignedDate time.Time,
	note string,
) (CreateAssignmentCommand, error) {
	cmd := CreateAssignmentCommand{
		assignedDate: assignedDate,
		note:         note,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setAssetID(assetID),
		cmd.setUserID(userID),
		cmd.setCreatorID(creatorID),
	); err != nil {
		return CreateAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the unique identifier for the new assignment.
func (c CreateAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// AssetID returns the identifier of the asset being assigned.
func (c CreateAssignmentCommand) AssetID() kernel.UUID {
	return c.assetID
}

// UserID returns the identifier of the receiving user.
func (c CreateAssignmentCommand) UserID() kernel.UUID {
	return c.userID
}

// CreatorID returns the identifier of the assigning administrator.
func (c CreateAssignmentCommand) CreatorID() kernel.UUID {
	return c.creatorID
}

// AssignedDate returns the date the assignment takes effect.
func (c CreateAssignmentCommand) AssignedDate() time.Time {
	return c.assignedDate
}

// Note returns the optional note attached to the assignment.
func (c CreateAssignmentCommand) Note() string {
	return c.note
}

func (c *CreateAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}

func (c *CreateAssignmentCommand) setAssetID(assetID kernel.UUID) error {
	if err := assetID.Validate(); err != nil {
		return err
	}
	c.assetID = assetID
	return nil
}

func (c *CreateAssignmentCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateAssignmentCommand) setCreatorID(creatorID kernel.UUID) error {
	if err := creatorID.Validate(); err != nil {
		return err
	}
	c.creatorID = creatorID
	return nil
}
