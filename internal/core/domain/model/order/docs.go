// Package order models parcels moving through a forwarder's warehouse.
//
// The package includes:
//   - Order: aggregate root with the current status and per-stage timestamps
//   - Status: the eight persisted status values and the transition policy
//   - Actor, ScanData: who changed the status and what was scanned
//   - HistoryEntry: immutable record of one status change
//   - StatusChanged: domain event raised for every status change
//
// Status pipeline:
//
//	incoming -> arrived_at_warehouse -> packed -> awaiting_pickup -> in_transit -> delivered
//
// The legacy values "received" and "shipped" are still read from storage and
// rank as arrived_at_warehouse and in_transit. They are never accepted as the
// target of a status change.
//
// Transition rules:
//   - Moving forward is allowed, skipping stages included
//   - Setting the current status again is rejected
//   - Moving backward is a correction: staff only, with notes
//   - A forwarder actor may only change its own orders
//
// Stage timestamps (receivedAt, packedAt, shippedAt, deliveredAt) are stamped
// the first time the order enters the stage and never overwritten.
package order
