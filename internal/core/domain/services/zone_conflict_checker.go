package services

import (
	"fmt"
	"strings"

	"forwarding/internal/core/domain/model/zone"
	"forwarding/internal/pkg/errs"
)

// ZoneConflictChecker enforces the rules between a forwarder's zones:
//   - no two active zones share a country
//   - no two active zones share a name (case-insensitive)
type ZoneConflictChecker struct{}

func NewZoneConflictChecker() ZoneConflictChecker {
	return ZoneConflictChecker{}
}

// Check compares candidate with the forwarder's other zones. siblings may
// include candidate itself; it is skipped. The error names both zones.
func (ZoneConflictChecker) Check(candidate *zone.Zone, siblings []*zone.Zone) error {
	if err := candidate.Validate(); err != nil {
		return err
	}

	for _, other := range siblings {
		if err := other.Validate(); err != nil {
			return err
		}
		if other.IsEqual(candidate) || !other.IsActive() || !other.IsOwnedBy(candidate.ForwarderID()) {
			continue
		}

		if strings.EqualFold(other.Name(), candidate.Name()) {
			return errs.NewConflictError("zone", fmt.Sprintf("duplicate zone name %q", candidate.Name()))
		}

		shared := candidate.Countries().Intersect(other.Countries())
		if len(shared) == 0 {
			continue
		}
		codes := make([]string, 0, len(shared))
		for _, c := range shared {
			codes = append(codes, c.String())
		}
		return errs.NewConflictError("zone", fmt.Sprintf("zone %q conflicts with zone %q: %s already assigned",
			candidate.Name(), other.Name(), strings.Join(codes, ", ")))
	}

	return nil
}
