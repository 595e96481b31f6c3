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
	ErrUpdateAssetCommandIsNotConstructed = errors.New(
		"UpdateAssetCommand must be created via NewUpdateAssetCommand constructor",
	)
)

// UpdateAssetCommand represents a request to modify an asset's editable
// fields. Code, category and location are immutable after creation and are
// therefore not part of this command.
type UpdateAssetCommand struct { //nolint:recvcheck //using for validation
	assetID       kernel.UUID
	name          string
	specification string
	installedDate time.Time
	state         asset.State

	guard guard.ConstructorGuard
}

// NewUpdateAssetCommand creates a command to modify an existing asset.
func NewUpdateAssetCommand(
	assetID kernel.UUID,
	name string,
	specification string,
	installedDate time.Time,
	state asset.State,
) (UpdateAssetCommand, error) {
	cmd := UpdateAssetCommand{
		specification: specification,
		installedDate: installedDate,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssetID(assetID),
		cmd.setName(name),
		cmd.setState(state),
	); err != nil {
		return UpdateAssetCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAssetCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAssetCommandIsNotConstructed)
}

// AssetID returns the identifier of the asset to update.
func (c UpdateAssetCommand) AssetID() kernel.UUID {
	return c.assetID
}

// Name returns the new display name.
func (c UpdateAssetCommand) Name() string {
	return c.name
}

// Specification returns the new specification text.
func (c UpdateAssetCommand) Specification() string {
	return c.specification
}

// InstalledDate returns the new installed date.
func (c UpdateAssetCommand) InstalledDate() time.Time {
	return c.installedDate
}

// State returns the new asset state.
func (c UpdateAssetCommand) State() asset.State {
	return c.state
}

func (c *UpdateAssetCommand) setAssetID(assetID kernel.UUID) error {
	if err := assetID.Validate(); err != nil {
		return err
	}
	c.assetID = assetID
	return nil
}

func (c *UpdateAssetCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateAssetCommand) setState(state asset.State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	c.state = state
	return nil
}
