package commands_test

import (
	"testing"
	"time"

	"amo/internal/core/application/usecases/commands"
	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateAssignmentCommandHandler_Handle_SameAsset(t *testing.T) {
	ctx := t.Context()
	assignmentID := kernel.NewUUID()
	assetID := kernel.NewUUID()
	existing := newTestAssignment(assignmentID, assetID)
	newUserID := kernel.NewUUID()
	cmd, err := commands.NewUpdateAssignmentCommand(
		assignmentID, assetID, newUserID,
		time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), "reassigned within team")
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", mock.Anything, assignmentID).Return(existing, nil).Once(),
		uow.On("AssetRepository").Return(new(MockAssetRepository)).Once(),
		assignmentRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAssignmentCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, newUserID, result.UserID)
	assert.Equal(t, "reassigned within team", result.Note)
	assignmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateAssignmentCommandHandler_Handle_AssetSwap(t *testing.T) {
	ctx := t.Context()
	assignmentID := kernel.NewUUID()
	oldAssetID := kernel.NewUUID()
	newAssetID := kernel.NewUUID()
	existing := newTestAssignment(assignmentID, oldAssetID)
	oldAsset := newTestAsset(oldAssetID, kernel.NewUUID(), asset.Assigned)
	newAsset := newTestAsset(newAssetID, kernel.NewUUID(), asset.Available)
	cmd, err := commands.NewUpdateAssignmentCommand(
		assignmentID, newAssetID, existing.UserID(), existing.AssignedDate(), existing.Note())
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	assetRepo := new(MockAssetRepository)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", mock.Anything, assignmentID).Return(existing, nil).Once(),
		uow.On("AssetRepository").Return(assetRepo).Once(),
		assetRepo.On("Get", mock.Anything, oldAssetID).Return(oldAsset, nil).Once(),
		assetRepo.On("Get", mock.Anything, newAssetID).Return(newAsset, nil).Once(),
		assignmentRepo.On("HasActiveForAsset", mock.Anything, newAssetID).Return(false, nil).Once(),
		assetRepo.On("Update", mock.Anything, oldAsset).Return(nil).Once(),
		assetRepo.On("Update", mock.Anything, newAsset).Return(nil).Once(),
		assignmentRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAssignmentCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, newAssetID, result.AssetID)
	assert.Equal(t, asset.Available, oldAsset.State())
	assert.Equal(t, asset.Assigned, newAsset.State())
	assignmentRepo.AssertExpectations(t)
	assetRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
