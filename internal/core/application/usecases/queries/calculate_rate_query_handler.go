package queries

import (
	"context"

	"forwarding/internal/core/domain/services"
)

// CalculateRateQueryHandler prices a shipment from the forwarder's current
// zones and rates. Nothing is cached; every call reads the configuration again.
//
// Failures:
//   - ObjectNotFoundError for an unknown forwarder, and for ErrNoZoneConfigured,
//     ErrNoRateConfigured and rate.ErrNoWeightSlabConfigured
//   - ValueIsInvalidError wrapping rate.ErrInvalidSlabConfiguration
type CalculateRateQueryHandler struct {
	readerFactory CatalogReaderFactory
	resolver      services.RateResolver
}

func NewCalculateRateQueryHandler(readerFactory CatalogReaderFactory) CalculateRateQueryHandler {
	return CalculateRateQueryHandler{
		readerFactory: readerFactory,
		resolver:      services.NewRateResolver(),
	}
}

func (h CalculateRateQueryHandler) Handle(ctx context.Context, query CalculateRateQuery) (services.Quote, error) {
	if err := query.Validate(); err != nil {
		return services.Quote{}, err
	}

	reader := h.readerFactory.Create()
	req := query.Request()

	fw, err := reader.ForwarderRepository().Get(ctx, query.ForwarderID())
	if err != nil {
		return services.Quote{}, err
	}

	zones, err := reader.ZoneRepository().ListActiveByForwarder(ctx, fw.ID())
	if err != nil {
		return services.Quote{}, err
	}
	z, err := h.resolver.MatchZone(zones, req.Destination)
	if err != nil {
		return services.Quote{}, err
	}

	rates, err := reader.RateRepository().ListActiveByZone(ctx, z.ID())
	if err != nil {
		return services.Quote{}, err
	}
	r, err := h.resolver.MatchRate(z, rates, req.Courier, req.ServiceType)
	if err != nil {
		return services.Quote{}, err
	}

	return h.resolver.Quote(fw, z, r, req)
}
