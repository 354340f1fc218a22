// Package forwarder models the businesses that operate warehouses and own
// zone/rate tables.
//
// The package includes:
//   - Forwarder: aggregate root holding identity and consolidation settings
//   - Consolidation: value object describing whether parcels may be held and
//     shipped together, the discount granted, and the holding period
//
// Key business rules:
//   - A forwarder must have a valid identifier and a non-empty name
//   - Consolidation discount is a percentage in [0, 100]
//   - An enabled consolidation needs a holding period of at least
//     MinHoldingPeriodDays and at most MaxHoldingPeriodDays
package forwarder
