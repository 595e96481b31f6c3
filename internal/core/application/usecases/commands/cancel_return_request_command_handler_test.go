package commands_test

import (
	"testing"

	"amo/internal/core/application/usecases/commands"
	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelReturnRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	assignmentID := kernel.NewUUID()
	owner := newTestAssignment(assignmentID, kernel.NewUUID())
	require.NoError(t, owner.LinkReturnRequest(requestID))
	aggregate := newTestReturnRequest(requestID, assignmentID)

	cmd, err := commands.NewCancelReturnRequestCommand(requestID)
	require.NoError(t, err)

	requestRepo := new(MockReturnRequestRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockReturnRequestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReturnRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, requestID).Return(aggregate, nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", mock.Anything, assignmentID).Return(owner, nil).Once(),
		assignmentRepo.On("Update", mock.Anything, owner).Return(nil).Once(),
		requestRepo.On("Delete", mock.Anything, requestID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReturnRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelReturnRequestCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Nil(t, owner.ReturnRequestID())
	assert.True(t, owner.IsActive())
	requestRepo.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelReturnRequestCommandHandler_Handle_RequestNotFound(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	cmd, err := commands.NewCancelReturnRequestCommand(requestID)
	require.NoError(t, err)

	requestRepo := new(MockReturnRequestRepository)
	uow := new(MockReturnRequestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReturnRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, requestID).
			Return(nil, errs.NewObjectNotFoundError("return request", requestID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReturnRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelReturnRequestCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
