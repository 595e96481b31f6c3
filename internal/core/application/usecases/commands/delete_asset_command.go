package commands

import (
	"errors"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/guard"
)

var (
	ErrDeleteAssetCommandIsNotConstructed = errors.New(
		"DeleteAssetCommand must be created via NewDeleteAssetCommand constructor",
	)
)

// DeleteAssetCommand represents a request to remove an asset from the system.
type DeleteAssetCommand struct { //nolint:recvcheck //using for validation
	assetID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAssetCommand creates a command to remove an asset.
func NewDeleteAssetCommand(assetID kernel.UUID) (DeleteAssetCommand, error) {
	cmd := DeleteAssetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAssetID(assetID); err != nil {
		return DeleteAssetCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAssetCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAssetCommandIsNotConstructed)
}

// AssetID returns the identifier of the asset to remove.
func (c DeleteAssetCommand) AssetID() kernel.UUID {
	return c.assetID
}

func (c *DeleteAssetCommand) setAssetID(assetID kernel.UUID) error {
	if err := assetID.Validate(); err != nil {
		return err
	}
	c.assetID = assetID
	return nil
}
