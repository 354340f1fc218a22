package kernel

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// ErrCountryCodeIsNotConstructed is returned when a zero-value CountryCode is used.
var ErrCountryCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"country code must be created via NewCountryCode")

// ErrCountrySetIsEmpty is returned when a zone is configured without countries.
var ErrCountrySetIsEmpty = errs.NewValueIsRequiredError("countries")

// CountryCode is an ISO-3166 alpha-2 code such as "SG" or "MY".
// Input is trimmed and upper-cased; anything that is not two ASCII letters is rejected.
type CountryCode struct { //nolint:recvcheck //using for validation
	code  string
	guard guard.ConstructorGuard
}

// NewCountryCode normalizes and validates a two-letter country code.
//
// Example:
//
//	sg, err := kernel.NewCountryCode(" sg ")
//	// sg.String() == "SG"
func NewCountryCode(raw string) (CountryCode, error) {
	c := CountryCode{guard: guard.NewConstructorGuard()}
	if err := c.setCode(raw); err != nil {
		return CountryCode{}, err
	}
	return c, nil
}

// Validate returns ErrCountryCodeIsNotConstructed for the zero value.
func (c CountryCode) Validate() error {
	return c.guard.Validate(ErrCountryCodeIsNotConstructed)
}

// String returns the upper-case code.
func (c CountryCode) String() string {
	return c.code
}

// IsEqual compares two codes by value.
func (c CountryCode) IsEqual(other CountryCode) bool {
	return c.code == other.code
}

func (c *CountryCode) setCode(raw string) error {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return errs.NewValueIsRequiredError("country code")
	}
	if len(code) != 2 || !isASCIILetter(code[0]) || !isASCIILetter(code[1]) {
		return errs.NewValueIsInvalidErrorWithCause("country code",
			fmt.Errorf("%q is not an ISO-3166 alpha-2 code", raw))
	}
	c.code = code
	return nil
}

func isASCIILetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// CountrySet is a sorted set of country codes with no duplicates.
type CountrySet struct {
	codes []CountryCode
	guard guard.ConstructorGuard
}

// NewCountrySet parses raw codes, drops duplicates and sorts the result.
// Every invalid entry is reported; an empty input fails with ErrCountrySetIsEmpty.
func NewCountrySet(raw []string) (CountrySet, error) {
	if len(raw) == 0 {
		return CountrySet{}, ErrCountrySetIsEmpty
	}

	seen := make(map[string]struct{}, len(raw))
	codes := make([]CountryCode, 0, len(raw))
	var parseErrs []error
	for _, r := range raw {
		code, err := NewCountryCode(r)
		if err != nil {
			parseErrs = append(parseErrs, err)
			continue
		}
		if _, dup := seen[code.String()]; dup {
			continue
		}
		seen[code.String()] = struct{}{}
		codes = append(codes, code)
	}
	if len(parseErrs) > 0 {
		return CountrySet{}, errors.Join(parseErrs...)
	}

	sort.Slice(codes, func(i, j int) bool { return codes[i].code < codes[j].code })

	return CountrySet{codes: codes, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the set was built by NewCountrySet.
func (s CountrySet) Validate() error {
	return s.guard.Validate(ErrCountrySetIsEmpty)
}

// Contains reports whether code is a member of the set.
func (s CountrySet) Contains(code CountryCode) bool {
	for _, c := range s.codes {
		if c.IsEqual(code) {
			return true
		}
	}
	return false
}

// Intersect returns the codes present in both sets, sorted.
func (s CountrySet) Intersect(other CountrySet) []CountryCode {
	shared := make([]CountryCode, 0)
	for _, c := range s.codes {
		if other.Contains(c) {
			shared = append(shared, c)
		}
	}
	return shared
}

// Codes returns a copy of the members.
func (s CountrySet) Codes() []CountryCode {
	out := make([]CountryCode, len(s.codes))
	copy(out, s.codes)
	return out
}

// Strings returns the members as plain strings, ready for persistence.
func (s CountrySet) Strings() []string {
	out := make([]string, len(s.codes))
	for i, c := range s.codes {
		out[i] = c.code
	}
	return out
}

// Len returns the number of members.
func (s CountrySet) Len() int {
	return len(s.codes)
}
