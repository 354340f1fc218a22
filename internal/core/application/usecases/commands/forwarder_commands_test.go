package commands_test

import (
	"context"
	"errors"
	"testing"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/forwarder"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterForwarderCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewRegisterForwarderCommand(id, "  Shipito ")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.ForwarderID())
	assert.Equal(t, "Shipito", cmd.Name())

	_, err = commands.NewRegisterForwarderCommand(id, "   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewRegisterForwarderCommand(kernel.UUID{}, "Shipito")
	require.Error(t, err)

	var zero commands.RegisterForwarderCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrRegisterForwarderCommandIsNotConstructed)
}

func TestRegisterForwarderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRegisterForwarderCommand(kernel.NewUUID(), "Shipito")
	require.NoError(t, err)

	repo := new(MockForwarderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ForwarderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(f *forwarder.Forwarder) bool {
			return f.ID().IsEqual(cmd.ForwarderID()) && f.Name() == "Shipito" && !f.Consolidation().Enabled()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRegisterForwarderCommandHandler(MockForwarderUoWFactory{uow: uow})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestRegisterForwarderCommandHandler_Handle_ValidationError(t *testing.T) {
	uow := new(MockUoW)
	handler := commands.NewRegisterForwarderCommandHandler(MockForwarderUoWFactory{uow: uow})

	err := handler.Handle(context.Background(), commands.RegisterForwarderCommand{})

	require.ErrorIs(t, err, commands.ErrRegisterForwarderCommandIsNotConstructed)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestRegisterForwarderCommandHandler_Handle_AddConflict(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRegisterForwarderCommand(kernel.NewUUID(), "Shipito")
	require.NoError(t, err)

	repo := new(MockForwarderRepository)
	uow := new(MockUoW)
	conflict := errs.NewConflictError("forwarder", "already exists")

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ForwarderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.Anything).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRegisterForwarderCommandHandler(MockForwarderUoWFactory{uow: uow})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewConfigureConsolidationCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewConfigureConsolidationCommand(id, true, 20, 14)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	percent, ok := cmd.Consolidation().Discount()
	assert.True(t, ok)
	assert.InDelta(t, 20.0, percent, 1e-9)

	_, err = commands.NewConfigureConsolidationCommand(id, true, 20, 0)
	require.Error(t, err)

	_, err = commands.NewConfigureConsolidationCommand(id, true, 120, 14)
	require.Error(t, err)
}

func TestConfigureConsolidationCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	fw, err := forwarder.NewForwarder(kernel.NewUUID(), "Shipito")
	require.NoError(t, err)
	cmd, err := commands.NewConfigureConsolidationCommand(fw.ID(), true, 20, 14)
	require.NoError(t, err)

	repo := new(MockForwarderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ForwarderRepository").Return(repo).Once(),
		repo.On("Get", ctx, fw.ID()).Return(fw, nil).Once(),
		repo.On("Update", ctx, fw).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewConfigureConsolidationCommandHandler(MockForwarderUoWFactory{uow: uow})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, fw.Consolidation().Enabled())
	assert.Equal(t, 14, fw.Consolidation().HoldingPeriodDays())
	repo.AssertExpectations(t)
}

func TestConfigureConsolidationCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewConfigureConsolidationCommand(kernel.NewUUID(), false, 0, 1)
	require.NoError(t, err)

	repo := new(MockForwarderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ForwarderRepository").Return(repo).Once(),
		repo.On("Get", ctx, cmd.ForwarderID()).Return(nil, errs.NewObjectNotFoundError("forwarder", cmd.ForwarderID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewConfigureConsolidationCommandHandler(MockForwarderUoWFactory{uow: uow})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestConfigureConsolidationCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewConfigureConsolidationCommand(kernel.NewUUID(), false, 0, 1)
	require.NoError(t, err)

	uow := new(MockUoW)
	beginErr := errors.New("connection refused")
	uow.On("Begin", ctx).Return(beginErr).Once()

	handler := commands.NewConfigureConsolidationCommandHandler(MockForwarderUoWFactory{uow: uow})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, beginErr)
	uow.AssertNotCalled(t, "ForwarderRepository")
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}
