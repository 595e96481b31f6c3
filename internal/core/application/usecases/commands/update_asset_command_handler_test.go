package commands_test

import (
	"testing"
	"time"

	"amo/internal/core/application/usecases/commands"
	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateAssetCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	assetID := kernel.NewUUID()
	existing := newTestAsset(assetID, kernel.NewUUID(), asset.Available)
	cmd, err := commands.NewUpdateAssetCommand(
		assetID, "MacBook Pro 14", "M3 Pro, 32GB",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), asset.NotAvailable)
	require.NoError(t, err)

	assetRepo := new(MockAssetRepository)
	uow := new(MockAssetUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssetRepository").Return(assetRepo).Once(),
		assetRepo.On("Get", mock.Anything, assetID).Return(existing, nil).Once(),
		assetRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAssetCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "MacBook Pro 14", result.Name)
	assert.Equal(t, "M3 Pro, 32GB", result.Specification)
	assert.Equal(t, asset.NotAvailable, result.State)
	assert.Equal(t, "Not Available", result.StateName)
	assetRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateAssetCommandHandler_Handle_AssetNotFound(t *testing.T) {
	ctx := t.Context()
	assetID := kernel.NewUUID()
	cmd, err := commands.NewUpdateAssetCommand(assetID, "MacBook Pro", "", time.Now(), asset.Available)
	require.NoError(t, err)

	assetRepo := new(MockAssetRepository)
	uow := new(MockAssetUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssetRepository").Return(assetRepo).Once(),
		assetRepo.On("Get", mock.Anything, assetID).
			Return(nil, errs.NewObjectNotFoundError("asset", assetID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAssetCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
