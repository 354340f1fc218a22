package queries

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/rate"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrCalculateRateQueryIsNotConstructed = errors.New(
	"CalculateRateQuery must be created via NewCalculateRateQuery constructor",
)

// CalculateRateQuery asks what a forwarder charges to ship a parcel.
//
// Example:
//
//	query, err := NewCalculateRateQuery(forwarderID, "de", "DHL", "express", 3.5, false)
//	quote, err := handler.Handle(ctx, query)
//	// quote.BaseCost == 87.5, quote.TotalCost == 92.5
type CalculateRateQuery struct { //nolint:recvcheck //using for validation
	forwarderID kernel.UUID
	request     services.QuoteRequest

	guard guard.ConstructorGuard
}

func NewCalculateRateQuery(
	forwarderID kernel.UUID,
	destination, courier, serviceType string,
	weightKg float64,
	consolidated bool,
) (CalculateRateQuery, error) {
	dest, destErr := kernel.NewCountryCode(destination)
	st, serviceErr := rate.ParseServiceType(serviceType)

	courier = strings.TrimSpace(courier)
	var courierErr error
	if courier == "" {
		courierErr = errs.NewValueIsRequiredError("courier")
	}

	var weightErr error
	if weightKg <= 0 || math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		weightErr = errs.NewValueIsInvalidErrorWithCause("weightKg", fmt.Errorf("%v is not greater than 0", weightKg))
	}

	if err := errors.Join(forwarderID.Validate(), destErr, serviceErr, courierErr, weightErr); err != nil {
		return CalculateRateQuery{}, err
	}

	return CalculateRateQuery{
		forwarderID: forwarderID,
		request: services.QuoteRequest{
			Destination:  dest,
			Courier:      courier,
			ServiceType:  st,
			WeightKg:     weightKg,
			Consolidated: consolidated,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q CalculateRateQuery) Validate() error {
	return q.guard.Validate(ErrCalculateRateQueryIsNotConstructed)
}

func (q CalculateRateQuery) ForwarderID() kernel.UUID       { return q.forwarderID }
func (q CalculateRateQuery) Request() services.QuoteRequest { return q.request }
