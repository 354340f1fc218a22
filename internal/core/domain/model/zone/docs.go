// Package zone models shipping zones: named sets of destination countries that
// a forwarder prices together.
//
// A zone is the first step of every quote: the destination country picks the
// forwarder's single active zone containing it, and the zone's rates are then
// searched by courier and service type.
//
// Business rules:
//   - Countries are ISO-3166 alpha-2 codes, upper-cased and deduplicated
//   - A zone needs at least one country and a non-empty name
//   - An inactive zone never matches a destination
//
// Rules spanning several zones (no shared countries between active zones of
// one forwarder, unique names) are enforced by services.ZoneConflictChecker.
package zone
