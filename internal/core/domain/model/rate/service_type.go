package rate

import (
	"fmt"
	"strings"

	"forwarding/internal/pkg/errs"
)

// ServiceType is the courier service level.
type ServiceType string

const (
	Standard  ServiceType = "standard"
	Express   ServiceType = "express"
	Overnight ServiceType = "overnight"
	Economy   ServiceType = "economy"
)

// ParseServiceType accepts the service name in any letter case.
func ParseServiceType(raw string) (ServiceType, error) {
	st := ServiceType(strings.ToLower(strings.TrimSpace(raw)))
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

// Validate checks the value is one of the known service types.
func (s ServiceType) Validate() error {
	switch s {
	case Standard, Express, Overnight, Economy:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("serviceType", fmt.Errorf("%q is not a valid service type", string(s)))
	}
}

func (s ServiceType) String() string {
	return string(s)
}
