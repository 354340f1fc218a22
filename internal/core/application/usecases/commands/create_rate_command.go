package commands

import (
	"errors"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/rate"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrCreateRateCommandIsNotConstructed = errors.New(
	"CreateRateCommand must be created via NewCreateRateCommand constructor",
)

// SlabInput is one weight slab as submitted by a forwarder.
type SlabInput struct {
	MinWeight float64
	MaxWeight *float64
	FlatRate  *float64
	RatePerKg *float64
	Label     string
}

// FeeInput carries the fixed fees of a rate.
type FeeInput struct {
	Handling      float64
	Insurance     *float64
	FuelSurcharge *float64
}

// CreateRateCommand adds a price list to a zone. Slabs are converted and
// checked for coverage on construction, so a constructed command always
// describes a valid rate table.
type CreateRateCommand struct { //nolint:recvcheck //using for validation
	rateID           kernel.UUID
	actorForwarderID kernel.UUID
	zoneID           kernel.UUID
	courier          string
	serviceType      rate.ServiceType
	slabs            []rate.WeightSlab
	fees             rate.Fees
	transit          rate.TransitTime

	guard guard.ConstructorGuard
}

func NewCreateRateCommand(
	rateID, actorForwarderID, zoneID kernel.UUID,
	courier, serviceType string,
	slabs []SlabInput,
	fees FeeInput,
	minDays, maxDays int,
) (CreateRateCommand, error) {
	cmd := CreateRateCommand{
		courier: strings.TrimSpace(courier),
		guard:   guard.NewConstructorGuard(),
	}

	var courierErr error
	if cmd.courier == "" {
		courierErr = rate.ErrCourierIsRequired
	}

	st, serviceErr := rate.ParseServiceType(serviceType)
	cmd.serviceType = st

	built, slabsErr := buildSlabs(slabs)
	cmd.slabs = built

	f, feesErr := rate.NewFees(fees.Handling, fees.Insurance, fees.FuelSurcharge)
	cmd.fees = f

	tt, transitErr := rate.NewTransitTime(minDays, maxDays)
	cmd.transit = tt

	if err := errors.Join(
		rateID.Validate(),
		actorForwarderID.Validate(),
		zoneID.Validate(),
		courierErr,
		serviceErr,
		slabsErr,
		feesErr,
		transitErr,
	); err != nil {
		return CreateRateCommand{}, err
	}

	cmd.rateID = rateID
	cmd.actorForwarderID = actorForwarderID
	cmd.zoneID = zoneID
	return cmd, nil
}

func buildSlabs(in []SlabInput) ([]rate.WeightSlab, error) {
	if len(in) == 0 {
		return nil, errs.NewValueIsRequiredError("slabs")
	}

	out := make([]rate.WeightSlab, 0, len(in))
	var slabErrs []error
	for _, s := range in {
		slab, err := rate.NewWeightSlab(s.MinWeight, s.MaxWeight, s.FlatRate, s.RatePerKg, s.Label)
		if err != nil {
			slabErrs = append(slabErrs, err)
			continue
		}
		out = append(out, slab)
	}
	if err := errors.Join(slabErrs...); err != nil {
		return nil, err
	}

	if err := rate.ValidateCoverage(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c CreateRateCommand) Validate() error {
	return c.guard.Validate(ErrCreateRateCommandIsNotConstructed)
}

func (c CreateRateCommand) RateID() kernel.UUID           { return c.rateID }
func (c CreateRateCommand) ActorForwarderID() kernel.UUID { return c.actorForwarderID }
func (c CreateRateCommand) ZoneID() kernel.UUID           { return c.zoneID }
func (c CreateRateCommand) Courier() string               { return c.courier }
func (c CreateRateCommand) ServiceType() rate.ServiceType { return c.serviceType }
func (c CreateRateCommand) Fees() rate.Fees               { return c.fees }
func (c CreateRateCommand) Transit() rate.TransitTime     { return c.transit }

func (c CreateRateCommand) Slabs() []rate.WeightSlab {
	out := make([]rate.WeightSlab, len(c.slabs))
	copy(out, c.slabs)
	return out
}
