package commands_test

import (
	"testing"
	"time"

	"amo/internal/core/application/usecases/commands"
	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateAssetCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	categoryID := kernel.NewUUID()
	creatorID := kernel.NewUUID()
	installed := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateAssetCommand(
		id, "MacBook Pro", "M3, 16GB", "HN", categoryID, asset.Available, installed, creatorID)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.AssetID())
	assert.Equal(t, "MacBook Pro", cmd.Name())
	assert.Equal(t, "M3, 16GB", cmd.Specification())
	assert.Equal(t, "HN", cmd.Location())
	assert.Equal(t, categoryID, cmd.CategoryID())
	assert.Equal(t, asset.Available, cmd.State())
	assert.Equal(t, installed, cmd.InstalledDate())
	assert.Equal(t, creatorID, cmd.CreatorID())
}

func TestNewCreateAssetCommand_InvalidAssetID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateAssetCommand(
		invalidID, "MacBook Pro", "", "HN", kernel.NewUUID(), asset.Available, time.Now(), kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateAssetCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateAssetCommand(
		kernel.NewUUID(), "", "", "HN", kernel.NewUUID(), asset.Available, time.Now(), kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateAssetCommand_EmptyLocation(t *testing.T) {
	_, err := commands.NewCreateAssetCommand(
		kernel.NewUUID(), "MacBook Pro", "", "", kernel.NewUUID(), asset.Available, time.Now(), kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateAssetCommand_UnknownState(t *testing.T) {
	_, err := commands.NewCreateAssetCommand(
		kernel.NewUUID(), "MacBook Pro", "", "HN", kernel.NewUUID(), asset.Unknown, time.Now(), kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateAssetCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateAssetCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateAssetCommandIsNotConstructed)
}
