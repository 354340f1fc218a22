package queries

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrListZonesQueryIsNotConstructed = errors.New(
	"ListZonesQuery must be created via NewListZonesQuery constructor",
)

// ListZonesQuery lists a forwarder's zones, inactive ones included, with the
// number of active rates each carries.
type ListZonesQuery struct { //nolint:recvcheck //using for validation
	forwarderID kernel.UUID
	activeOnly  bool

	guard guard.ConstructorGuard
}

func NewListZonesQuery(forwarderID kernel.UUID, activeOnly bool) (ListZonesQuery, error) {
	if err := forwarderID.Validate(); err != nil {
		return ListZonesQuery{}, err
	}
	return ListZonesQuery{
		forwarderID: forwarderID,
		activeOnly:  activeOnly,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ListZonesQuery) Validate() error {
	return q.guard.Validate(ErrListZonesQueryIsNotConstructed)
}

func (q ListZonesQuery) ForwarderID() kernel.UUID { return q.forwarderID }
func (q ListZonesQuery) ActiveOnly() bool         { return q.activeOnly }

type ListZonesQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Countries   []string
	Active      bool
	ActiveRates int
}
