// Package rate models a forwarder's price list for one zone.
//
// A Rate binds a zone to a courier and a service type and carries:
//   - WeightSlab: weight bands priced either flat or per kilogram
//   - Fees: a handling fee plus optional insurance and fuel surcharge
//   - TransitTime: the estimated delivery window in days
//
// Weight slabs are inclusive on both ends. When two slabs touch, the weight at
// the shared boundary belongs to the slab that declares it as its minimum:
//
//	[0-1kg flat 35] [1-5kg 25/kg] [5kg+ 22/kg]
//	1.0kg -> "1-5kg", 5.0kg -> "5kg+"
//
// New rates must cover weights without gaps or overlaps, starting from the
// first slab's minimum, with only the last slab allowed to be open-ended.
// Rates restored from storage skip the coverage check so that legacy data can
// still be read; resolution then reports ErrNoWeightSlabConfigured or
// ErrInvalidSlabConfiguration.
package rate
