package commands

import (
	"errors"

	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/guard"
)

var (
	ErrSetAssetStateCommandIsNotConstructed = errors.New(
		"SetAssetStateCommand must be created via NewSetAssetStateCommand constructor",
	)
)

// SetAssetStateCommand represents a request to move an asset to a new state.
type SetAssetStateCommand struct { //nolint:recvcheck //using for validation
	assetID kernel.UUID
	state   asset.State

	guard guard.ConstructorGuard
}

// NewSetAssetStateCommand creates a command to change an asset's state.
func NewSetAssetStateCommand(assetID kernel.UUID, state asset.State) (SetAssetStateCommand, error) {
	cmd := SetAssetStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssetID(assetID),
		cmd.setState(state),
	); err != nil {
		return SetAssetStateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAssetStateCommand) Validate() error {
	return c.guard.Validate(ErrSetAssetStateCommandIsNotConstructed)
}

// AssetID returns the identifier of the asset to change.
func (c SetAssetStateCommand) AssetID() kernel.UUID {
	return c.assetID
}

// State returns the target asset state.
func (c SetAssetStateCommand) State() asset.State {
	return c.state
}

func (c *SetAssetStateCommand) setAssetID(assetID kernel.UUID) error {
	if err := assetID.Validate(); err != nil {
		return err
	}
	c.assetID = assetID
	return nil
}

func (c *SetAssetStateCommand) setState(state asset.State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	c.state = state
	return nil
}
