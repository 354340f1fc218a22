package order

import (
	"errors"
	"strings"

	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// ErrScanDataIsNotConstructed is returned for a zero-value ScanData.
var ErrScanDataIsNotConstructed = errors.New("ScanData must be created via NewScanData constructor")

// ScanData is the barcode scan that triggered a status change.
type ScanData struct { //nolint:recvcheck //using for validation
	barcode  string
	location string
	device   string
	guard    guard.ConstructorGuard
}

// NewScanData requires a barcode; location and device are optional.
func NewScanData(barcode, location, device string) (ScanData, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return ScanData{}, errs.NewValueIsRequiredError("barcode")
	}
	return ScanData{
		barcode:  barcode,
		location: strings.TrimSpace(location),
		device:   strings.TrimSpace(device),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (s ScanData) Validate() error {
	return s.guard.Validate(ErrScanDataIsNotConstructed)
}

func (s ScanData) Barcode() string {
	return s.barcode
}

func (s ScanData) Location() string {
	return s.location
}

func (s ScanData) Device() string {
	return s.device
}
