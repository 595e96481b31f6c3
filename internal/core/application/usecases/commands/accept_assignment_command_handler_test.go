package commands_test

import (
	"testing"

	"amo/internal/core/application/usecases/commands"
	"amo/internal/core/domain/model/assignment"
	"amo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptAssignmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	assignmentID := kernel.NewUUID()
	existing := newTestAssignment(assignmentID, kernel.NewUUID())
	cmd, err := commands.NewAcceptAssignmentCommand(assignmentID)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", mock.Anything, assignmentID).Return(existing, nil).Once(),
		assignmentRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptAssignmentCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, assignment.Accepted, result.State)
	assert.Equal(t, "Accepted", result.StateName)
	assignmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptAssignmentCommandHandler_Handle_AlreadyAccepted(t *testing.T) {
	ctx := t.Context()
	assignmentID := kernel.NewUUID()
	existing := newTestAssignment(assignmentID, kernel.NewUUID())
	accepted, err := existing.Accept()
	require.NoError(t, err)
	require.True(t, accepted)

	cmd, err := commands.NewAcceptAssignmentCommand(assignmentID)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", mock.Anything, assignmentID).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptAssignmentCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Nil(t, result)
	assignmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
