// Package queries contains read operations. Quotes go through the domain
// repositories and the rate resolver so they share the write side's rules;
// listings read straight from the database through GORM.
package queries

import (
	"forwarding/internal/core/ports"
)

type (
	// CatalogReader exposes the repositories a quote reads. It is never begun:
	// each repository call runs on its own connection.
	CatalogReader interface {
		ForwarderRepository() ports.ForwarderRepository
		ZoneRepository() ports.ZoneRepository
		RateRepository() ports.RateRepository
	}

	CatalogReaderFactory interface {
		Create() CatalogReader
	}
)
