package commands_test

import (
	"context"
	"testing"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/rate"
	"forwarding/internal/core/domain/model/zone"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateZoneCommand_NormalizesCountries(t *testing.T) {
	cmd, err := commands.NewCreateZoneCommand(kernel.NewUUID(), kernel.NewUUID(), " Southeast Asia ", []string{"sg", "MY", "sg"})

	require.NoError(t, err)
	assert.Equal(t, "Southeast Asia", cmd.Name())
	assert.ElementsMatch(t, []string{"SG", "MY"}, cmd.Countries().Strings())
}

func TestNewCreateZoneCommand_Invalid(t *testing.T) {
	_, err := commands.NewCreateZoneCommand(kernel.NewUUID(), kernel.NewUUID(), "", nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateZoneCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	forwarderID := kernel.NewUUID()
	existing := mustZone(forwarderID, "Europe", "DE", "FR")
	cmd, err := commands.NewCreateZoneCommand(kernel.NewUUID(), forwarderID, "Asia", []string{"SG", "MY"})
	require.NoError(t, err)

	repo := new(MockZoneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ZoneRepository").Return(repo).Once(),
		repo.On("ListActiveByForwarder", ctx, forwarderID).Return([]*zone.Zone{existing}, nil).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(z *zone.Zone) bool {
			return z.ID().IsEqual(cmd.ZoneID()) && z.IsActive() && z.Name() == "Asia"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateZoneCommandHandler(MockCatalogUoWFactory{uow: uow})
	require.NoError(t, handler.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestCreateZoneCommandHandler_Handle_CountryConflict(t *testing.T) {
	ctx := context.Background()
	forwarderID := kernel.NewUUID()
	existing := mustZone(forwarderID, "Europe", "DE", "FR")
	cmd, err := commands.NewCreateZoneCommand(kernel.NewUUID(), forwarderID, "Western Europe", []string{"FR", "ES"})
	require.NoError(t, err)

	repo := new(MockZoneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ZoneRepository").Return(repo).Once(),
		repo.On("ListActiveByForwarder", ctx, forwarderID).Return([]*zone.Zone{existing}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateZoneCommandHandler(MockCatalogUoWFactory{uow: uow})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "Europe")
	assert.Contains(t, err.Error(), "Western Europe")
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateZoneCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := context.Background()
	forwarderID := kernel.NewUUID()
	existing := mustZone(forwarderID, "Europe", "DE")
	cmd, err := commands.NewCreateZoneCommand(kernel.NewUUID(), forwarderID, "europe", []string{"US"})
	require.NoError(t, err)

	repo := new(MockZoneRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ZoneRepository").Return(repo).Once()
	repo.On("ListActiveByForwarder", ctx, forwarderID).Return([]*zone.Zone{existing}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateZoneCommandHandler(MockCatalogUoWFactory{uow: uow})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "duplicate zone name")
}

func TestUpdateZoneCountriesCommandHandler_Handle_ExcludesItself(t *testing.T) {
	ctx := context.Background()
	forwarderID := kernel.NewUUID()
	target := mustZone(forwarderID, "Europe", "DE", "FR")
	other := mustZone(forwarderID, "Asia", "SG")
	cmd, err := commands.NewUpdateZoneCountriesCommand(forwarderID, target.ID(), []string{"DE", "FR", "ES"})
	require.NoError(t, err)

	repo := new(MockZoneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ZoneRepository").Return(repo).Once(),
		repo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		repo.On("ListActiveByForwarder", ctx, forwarderID).Return([]*zone.Zone{target, other}, nil).Once(),
		repo.On("Update", ctx, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateZoneCountriesCommandHandler(MockCatalogUoWFactory{uow: uow})
	require.NoError(t, handler.Handle(ctx, cmd))
	assert.ElementsMatch(t, []string{"DE", "FR", "ES"}, target.Countries().Strings())
}

func TestUpdateZoneCountriesCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := context.Background()
	forwarderID := kernel.NewUUID()
	target := mustZone(forwarderID, "Europe", "DE")
	other := mustZone(forwarderID, "Asia", "SG")
	cmd, err := commands.NewUpdateZoneCountriesCommand(forwarderID, target.ID(), []string{"DE", "SG"})
	require.NoError(t, err)

	repo := new(MockZoneRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ZoneRepository").Return(repo).Once()
	repo.On("Get", ctx, target.ID()).Return(target, nil).Once()
	repo.On("ListActiveByForwarder", ctx, forwarderID).Return([]*zone.Zone{target, other}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewUpdateZoneCountriesCommandHandler(MockCatalogUoWFactory{uow: uow})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateZoneCountriesCommandHandler_Handle_ForeignZone(t *testing.T) {
	ctx := context.Background()
	target := mustZone(kernel.NewUUID(), "Europe", "DE")
	cmd, err := commands.NewUpdateZoneCountriesCommand(kernel.NewUUID(), target.ID(), []string{"FR"})
	require.NoError(t, err)

	repo := new(MockZoneRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ZoneRepository").Return(repo).Once()
	repo.On("Get", ctx, target.ID()).Return(target, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewUpdateZoneCountriesCommandHandler(MockCatalogUoWFactory{uow: uow})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.ElementsMatch(t, []string{"DE"}, target.Countries().Strings())
}

func TestDeactivateZoneCommandHandler_Handle_DeactivatesRates(t *testing.T) {
	ctx := context.Background()
	forwarderID := kernel.NewUUID()
	z := mustZone(forwarderID, "Europe", "DE")
	dhl := mustRate(z.ID(), "DHL", rate.Express)
	ups := mustRate(z.ID(), "UPS", rate.Standard)
	cmd, err := commands.NewDeactivateZoneCommand(forwarderID, z.ID())
	require.NoError(t, err)

	zoneRepo := new(MockZoneRepository)
	rateRepo := new(MockRateRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ZoneRepository").Return(zoneRepo).Once(),
		zoneRepo.On("Get", ctx, z.ID()).Return(z, nil).Once(),
		zoneRepo.On("Update", ctx, z).Return(nil).Once(),
		uow.On("RateRepository").Return(rateRepo).Once(),
		rateRepo.On("ListActiveByZone", ctx, z.ID()).Return([]*rate.Rate{dhl, ups}, nil).Once(),
		rateRepo.On("Update", ctx, dhl).Return(nil).Once(),
		rateRepo.On("Update", ctx, ups).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeactivateZoneCommandHandler(MockCatalogUoWFactory{uow: uow})
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.False(t, z.IsActive())
	assert.False(t, dhl.IsActive())
	assert.False(t, ups.IsActive())
	rateRepo.AssertExpectations(t)
}

func TestDeactivateZoneCommandHandler_Handle_Unauthorized(t *testing.T) {
	ctx := context.Background()
	z := mustZone(kernel.NewUUID(), "Europe", "DE")
	cmd, err := commands.NewDeactivateZoneCommand(kernel.NewUUID(), z.ID())
	require.NoError(t, err)

	zoneRepo := new(MockZoneRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ZoneRepository").Return(zoneRepo).Once()
	zoneRepo.On("Get", ctx, z.ID()).Return(z, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewDeactivateZoneCommandHandler(MockCatalogUoWFactory{uow: uow})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.True(t, z.IsActive())
	uow.AssertNotCalled(t, "RateRepository")
}

func validSlabs() []commands.SlabInput {
	return []commands.SlabInput{
		{MinWeight: 0, MaxWeight: ptr(1), FlatRate: ptr(15), Label: "up to 1kg"},
		{MinWeight: 1, RatePerKg: ptr(25), Label: "over 1kg"},
	}
}

func TestNewCreateRateCommand_Success(t *testing.T) {
	cmd, err := commands.NewCreateRateCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		" DHL ", "EXPRESS", validSlabs(),
		commands.FeeInput{Handling: 5, Insurance: ptr(1.5)},
		2, 4,
	)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "DHL", cmd.Courier())
	assert.Equal(t, rate.Express, cmd.ServiceType())
	assert.Len(t, cmd.Slabs(), 2)
	assert.InDelta(t, 6.5, cmd.Fees().Total(), 1e-9)
	assert.Equal(t, 4, cmd.Transit().MaxDays())
}

func TestNewCreateRateCommand_InvalidSlabs(t *testing.T) {
	tests := map[string][]commands.SlabInput{
		"empty": nil,
		"both prices": {
			{MinWeight: 0, FlatRate: ptr(10), RatePerKg: ptr(2)},
		},
		"no price": {
			{MinWeight: 0},
		},
		"gap": {
			{MinWeight: 0, MaxWeight: ptr(1), FlatRate: ptr(10)},
			{MinWeight: 2, RatePerKg: ptr(5)},
		},
		"overlap": {
			{MinWeight: 0, MaxWeight: ptr(2), FlatRate: ptr(10)},
			{MinWeight: 1, RatePerKg: ptr(5)},
		},
		"unbounded not last": {
			{MinWeight: 0, FlatRate: ptr(10)},
			{MinWeight: 1, RatePerKg: ptr(5)},
		},
	}

	for name, slabs := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := commands.NewCreateRateCommand(
				kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				"DHL", "express", slabs, commands.FeeInput{}, 1, 2,
			)
			require.Error(t, err)
		})
	}
}

func TestNewCreateRateCommand_InvalidServiceAndTransit(t *testing.T) {
	_, err := commands.NewCreateRateCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"", "teleport", validSlabs(), commands.FeeInput{Handling: -1}, 5, 2,
	)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func newCreateRateCommand(t *testing.T, actor, zoneID kernel.UUID, courier string) commands.CreateRateCommand {
	t.Helper()
	cmd, err := commands.NewCreateRateCommand(
		kernel.NewUUID(), actor, zoneID, courier, "express", validSlabs(),
		commands.FeeInput{Handling: 5}, 2, 4,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateRateCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	forwarderID := kernel.NewUUID()
	z := mustZone(forwarderID, "Europe", "DE")
	other := mustRate(z.ID(), "UPS", rate.Express)
	cmd := newCreateRateCommand(t, forwarderID, z.ID(), "DHL")

	zoneRepo := new(MockZoneRepository)
	rateRepo := new(MockRateRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ZoneRepository").Return(zoneRepo).Once(),
		zoneRepo.On("Get", ctx, z.ID()).Return(z, nil).Once(),
		uow.On("RateRepository").Return(rateRepo).Once(),
		rateRepo.On("ListActiveByZone", ctx, z.ID()).Return([]*rate.Rate{other}, nil).Once(),
		rateRepo.On("Add", ctx, mock.MatchedBy(func(r *rate.Rate) bool {
			return r.ID().IsEqual(cmd.RateID()) && r.IsActive() && r.Courier() == "DHL"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateRateCommandHandler(MockCatalogUoWFactory{uow: uow})
	require.NoError(t, handler.Handle(ctx, cmd))
	rateRepo.AssertExpectations(t)
}

func TestCreateRateCommandHandler_Handle_DuplicateActiveRate(t *testing.T) {
	ctx := context.Background()
	forwarderID := kernel.NewUUID()
	z := mustZone(forwarderID, "Europe", "DE")
	existing := mustRate(z.ID(), "dhl", rate.Express)
	cmd := newCreateRateCommand(t, forwarderID, z.ID(), "DHL")

	zoneRepo := new(MockZoneRepository)
	rateRepo := new(MockRateRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ZoneRepository").Return(zoneRepo).Once()
	zoneRepo.On("Get", ctx, z.ID()).Return(z, nil).Once()
	uow.On("RateRepository").Return(rateRepo).Once()
	rateRepo.On("ListActiveByZone", ctx, z.ID()).Return([]*rate.Rate{existing}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateRateCommandHandler(MockCatalogUoWFactory{uow: uow})
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	rateRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateRateCommandHandler_Handle_InactiveZone(t *testing.T) {
	ctx := context.Background()
	forwarderID := kernel.NewUUID()
	z := mustZone(forwarderID, "Europe", "DE")
	z.Deactivate()
	cmd := newCreateRateCommand(t, forwarderID, z.ID(), "DHL")

	zoneRepo := new(MockZoneRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ZoneRepository").Return(zoneRepo).Once()
	zoneRepo.On("Get", ctx, z.ID()).Return(z, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateRateCommandHandler(MockCatalogUoWFactory{uow: uow})
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "RateRepository")
}

func TestCreateRateCommandHandler_Handle_ForeignZone(t *testing.T) {
	ctx := context.Background()
	z := mustZone(kernel.NewUUID(), "Europe", "DE")
	cmd := newCreateRateCommand(t, kernel.NewUUID(), z.ID(), "DHL")

	zoneRepo := new(MockZoneRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ZoneRepository").Return(zoneRepo).Once()
	zoneRepo.On("Get", ctx, z.ID()).Return(z, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateRateCommandHandler(MockCatalogUoWFactory{uow: uow})
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestDeactivateRateCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	forwarderID := kernel.NewUUID()
	z := mustZone(forwarderID, "Europe", "DE")
	r := mustRate(z.ID(), "DHL", rate.Express)
	cmd, err := commands.NewDeactivateRateCommand(forwarderID, r.ID())
	require.NoError(t, err)

	zoneRepo := new(MockZoneRepository)
	rateRepo := new(MockRateRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RateRepository").Return(rateRepo).Once(),
		rateRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		uow.On("ZoneRepository").Return(zoneRepo).Once(),
		zoneRepo.On("Get", ctx, z.ID()).Return(z, nil).Once(),
		rateRepo.On("Update", ctx, r).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeactivateRateCommandHandler(MockCatalogUoWFactory{uow: uow})
	require.NoError(t, handler.Handle(ctx, cmd))
	assert.False(t, r.IsActive())
}

func TestDeactivateRateCommandHandler_Handle_RateNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewDeactivateRateCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	rateRepo := new(MockRateRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RateRepository").Return(rateRepo).Once()
	rateRepo.On("Get", ctx, cmd.RateID()).Return(nil, errs.NewObjectNotFoundError("rate", cmd.RateID())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewDeactivateRateCommandHandler(MockCatalogUoWFactory{uow: uow})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
