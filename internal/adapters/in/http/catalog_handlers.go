package http

import (
	"context"
	"errors"
	"net/http"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// RegisterForwarder handles POST /api/v1/forwarders.
func (s *Server) RegisterForwarder(ctx echo.Context) error {
	var body servers.RegisterForwarderJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return badRequest(ctx, err.Error())
	}

	forwarderID := kernel.NewUUID()
	cmd, err := commands.NewRegisterForwarderCommand(forwarderID, body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.RegisterForwarder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: forwarderID.Bytes()})
}

// ConfigureConsolidation handles PUT /api/v1/forwarders/{forwarderId}/consolidation.
func (s *Server) ConfigureConsolidation(ctx echo.Context, forwarderId openapi_types.UUID) error {
	var body servers.ConfigureConsolidationJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return badRequest(ctx, err.Error())
	}

	forwarderID, err := kernel.UUIDFromGoogle(forwarderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewConfigureConsolidationCommand(
		forwarderID, body.Enabled, body.DiscountPercent, body.HoldingPeriodDays,
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.ConfigureConsolidation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListZones handles GET /api/v1/forwarders/{forwarderId}/zones.
func (s *Server) ListZones(ctx echo.Context, forwarderId openapi_types.UUID, params servers.ListZonesParams) error {
	forwarderID, err := kernel.UUIDFromGoogle(forwarderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListZonesQuery(forwarderID, params.ActiveOnly != nil && *params.ActiveOnly)
	if err != nil {
		return s.fail(ctx, err)
	}

	zones, err := s.handlers.ListZones.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Zone, len(zones))
	for i, z := range zones {
		response[i] = servers.Zone{
			Id:          z.ID.Bytes(),
			Name:        z.Name,
			Countries:   z.Countries,
			Active:      z.Active,
			ActiveRates: z.ActiveRates,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateZone handles POST /api/v1/forwarders/{forwarderId}/zones.
func (s *Server) CreateZone(ctx echo.Context, forwarderId openapi_types.UUID) error {
	var body servers.CreateZoneJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return badRequest(ctx, err.Error())
	}

	forwarderID, err := kernel.UUIDFromGoogle(forwarderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	zoneID := kernel.NewUUID()
	cmd, err := commands.NewCreateZoneCommand(zoneID, forwarderID, body.Name, body.Countries)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.CreateZone.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: zoneID.Bytes()})
}

// UpdateZoneCountries handles PUT /api/v1/forwarders/{forwarderId}/zones/{zoneId}/countries.
func (s *Server) UpdateZoneCountries(ctx echo.Context, forwarderId, zoneId openapi_types.UUID) error {
	var body servers.UpdateZoneCountriesJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return badRequest(ctx, err.Error())
	}

	forwarderID, zoneID, err := pairOfIDs(forwarderId, zoneId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateZoneCountriesCommand(forwarderID, zoneID, body.Countries)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.UpdateZoneCountries.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeactivateZone handles DELETE /api/v1/forwarders/{forwarderId}/zones/{zoneId}.
// Rates of the zone are deactivated with it; nothing is deleted.
func (s *Server) DeactivateZone(ctx echo.Context, forwarderId, zoneId openapi_types.UUID) error {
	forwarderID, zoneID, err := pairOfIDs(forwarderId, zoneId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeactivateZoneCommand(forwarderID, zoneID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.DeactivateZone.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRate handles POST /api/v1/forwarders/{forwarderId}/zones/{zoneId}/rates.
func (s *Server) CreateRate(ctx echo.Context, forwarderId, zoneId openapi_types.UUID) error {
	var body servers.CreateRateJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return badRequest(ctx, err.Error())
	}

	forwarderID, zoneID, err := pairOfIDs(forwarderId, zoneId)
	if err != nil {
		return s.fail(ctx, err)
	}

	slabs := make([]commands.SlabInput, len(body.Slabs))
	for i, slab := range body.Slabs {
		slabs[i] = commands.SlabInput{
			MinWeight: slab.MinWeight,
			MaxWeight: slab.MaxWeight,
			FlatRate:  slab.FlatRate,
			RatePerKg: slab.RatePerKg,
			Label:     deref(slab.Label),
		}
	}

	rateID := kernel.NewUUID()
	cmd, err := commands.NewCreateRateCommand(
		rateID, forwarderID, zoneID,
		body.Courier, string(body.ServiceType),
		slabs,
		commands.FeeInput{
			Handling:      body.Fees.Handling,
			Insurance:     body.Fees.Insurance,
			FuelSurcharge: body.Fees.FuelSurcharge,
		},
		body.Transit.MinDays, body.Transit.MaxDays,
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.CreateRate.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: rateID.Bytes()})
}

// DeactivateRate handles DELETE /api/v1/forwarders/{forwarderId}/rates/{rateId}.
func (s *Server) DeactivateRate(ctx echo.Context, forwarderId, rateId openapi_types.UUID) error {
	forwarderID, rateID, err := pairOfIDs(forwarderId, rateId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeactivateRateCommand(forwarderID, rateID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.DeactivateRate.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CalculateRate handles POST /api/v1/forwarders/{forwarderId}/quotes.
// Every outcome, including a rejected request, is counted.
func (s *Server) CalculateRate(ctx echo.Context, forwarderId openapi_types.UUID) error {
	var body servers.CalculateRateJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		s.recorder.RecordRateQuote(quoteResult(errInvalidBody))
		return badRequest(ctx, err.Error())
	}

	quote, err := s.quote(ctx.Request().Context(), forwarderId, body)
	s.recorder.RecordRateQuote(quoteResult(err))
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Quote{
		ZoneName:       quote.ZoneName,
		Courier:        quote.Courier,
		ServiceType:    servers.ServiceType(quote.ServiceType),
		SlabLabel:      quote.SlabLabel,
		BaseCost:       quote.BaseCost,
		TotalCost:      quote.TotalCost,
		TransitMinDays: quote.TransitMinDays,
		TransitMaxDays: quote.TransitMaxDays,
		Breakdown: servers.FeeBreakdown{
			Base:          quote.Breakdown.Base,
			Handling:      quote.Breakdown.Handling,
			Insurance:     quote.Breakdown.Insurance,
			FuelSurcharge: quote.Breakdown.FuelSurcharge,
			Discount:      quote.Breakdown.Discount,
		},
	})
}

func (s *Server) quote(
	ctx context.Context,
	forwarderId openapi_types.UUID,
	body servers.QuoteRequest,
) (services.Quote, error) {
	forwarderID, err := kernel.UUIDFromGoogle(forwarderId)
	if err != nil {
		return services.Quote{}, err
	}

	query, err := queries.NewCalculateRateQuery(
		forwarderID,
		body.Destination,
		body.Courier,
		string(body.ServiceType),
		body.WeightKg,
		body.Consolidated != nil && *body.Consolidated,
	)
	if err != nil {
		return services.Quote{}, err
	}

	return s.handlers.CalculateRate.Handle(ctx, query)
}

func pairOfIDs(first, second openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	a, errA := kernel.UUIDFromGoogle(first)
	b, errB := kernel.UUIDFromGoogle(second)
	if err := errors.Join(errA, errB); err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return a, b, nil
}
