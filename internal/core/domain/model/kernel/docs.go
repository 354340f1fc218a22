// Package kernel provides the shared value objects of the forwarding domain.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - CountryCode: an ISO-3166 alpha-2 destination country
//   - CountrySet: an ordered, de-duplicated set of country codes used by zones
//
// Zero values are invalid; every type must be built through its constructor and
// exposes Validate for checks at aggregate boundaries.
package kernel
