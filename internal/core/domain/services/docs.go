// Package services provides domain services for rules that span several
// aggregates of the forwarding domain.
//
// The package includes:
//   - RateResolver: picks the zone, rate and weight slab for a shipment and
//     prices it, applying the forwarder's consolidation discount
//   - ZoneConflictChecker: keeps a forwarder's active zones disjoint and
//     uniquely named
//
// Services are stateless and never load data themselves. Callers fetch the
// aggregates and pass them in, so every quote reflects the configuration as
// stored at the time of the call.
package services
