package commands

import (
	"errors"
	"time"

	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/errs"
	"amo/internal/pkg/guard"
)

var (
	ErrCreateAssetCommandIsNotConstructed = errors.New(
		"CreateAssetCommand must be created via NewCreateAssetCommand constructor",
	)
)

// CreateAssetCommand represents a request to register a new asset.
// The location is the creating administrator's location, taken from the
// caller's context rather than the draft, and fixes the asset's query
// partition for good.
type CreateAssetCommand struct { //nolint:recvcheck //using for validation
	assetID       kernel.UUID
	name          string
	specification string
	location      string
	categoryID    kernel.UUID
	state         asset.State
	installedDate time.Time
	creatorID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateAssetCommand creates a command to register a new asset.
// Validates identifiers, the asset state, and that name and location are
// present. Returns an error if any validation fails.
func NewCreateAssetCommand(
	assetID kernel.UUID,
	name string,
	specification string,
	location string,
	categoryID kernel.UUID,
	state asset.State,
	installedDate time.Time,
	creatorID kernel.UUID,
) (CreateAssetCommand, error) {
	cmd := CreateAssetCommand{
		specification: specification,
		installedDate: installedDate,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssetID(assetID),
		cmd.setName(name),
		cmd.setLocation(location),
		cmd.setCategoryID(categoryID),
		cmd.setState(state),
		cmd.setCreatorID(creatorID),
	); err != nil {
		return CreateAssetCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAssetCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssetCommandIsNotConstructed)
}

// AssetID returns the unique identifier for the new asset.
func (c CreateAssetCommand) AssetID() kernel.UUID {
	return c.assetID
}

// Name returns the asset's display name.
func (c CreateAssetCommand) Name() string {
	return c.name
}

// Specification returns the asset's free-form specification text.
func (c CreateAssetCommand) Specification() string {
	return c.specification
}

// Location returns the creating administrator's location.
func (c CreateAssetCommand) Location() string {
	return c.location
}

// CategoryID returns the identifier of the owning category.
func (c CreateAssetCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// State returns the initial asset state.
func (c CreateAssetCommand) State() asset.State {
	return c.state
}

// InstalledDate returns the date the asset was installed.
func (c CreateAssetCommand) InstalledDate() time.Time {
	return c.installedDate
}

// CreatorID returns the identifier of the creating administrator.
func (c CreateAssetCommand) CreatorID() kernel.UUID {
	return c.creatorID
}

func (c *CreateAssetCommand) setAssetID(assetID kernel.UUID) error {
	if err := assetID.Validate(); err != nil {
		return err
	}
	c.assetID = assetID
	return nil
}

func (c *CreateAssetCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateAssetCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	c.location = location
	return nil
}

func (c *CreateAssetCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	c.categoryID = categoryID
	return nil
}

func (c *CreateAssetCommand) setState(state asset.State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	c.state = state
	return nil
}

func (c *CreateAssetCommand) setCreatorID(creatorID kernel.UUID) error {
	if err := creatorID.Validate(); err != nil {
		return err
	}
	c.creatorID = creatorID
	return nil
}
