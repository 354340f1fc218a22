package queries

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ListZonesQueryHandler struct {
	db *gorm.DB
}

func NewListZonesQueryHandler(db *gorm.DB) ListZonesQueryHandler {
	return ListZonesQueryHandler{db: db}
}

// Handle returns zones sorted by name. An unknown forwarder yields an empty list.
func (h ListZonesQueryHandler) Handle(ctx context.Context, query ListZonesQuery) ([]ListZonesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	zones := make([]ListZonesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			z.id,
			z.name,
			z.countries,
			z.active,
			COUNT(r.id) FILTER (WHERE r.active) AS active_rates
		FROM shipping_zones z
		LEFT JOIN shipping_rates r ON r.zone_id = z.id
		WHERE z.forwarder_id = ? AND (z.active OR NOT ?)
		GROUP BY z.id
		ORDER BY lower(z.name), z.id
	`, query.ForwarderID().Bytes(), query.ActiveOnly()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListZonesQueryResponse
		var id uuid.UUID
		var countries pq.StringArray

		if err = rows.Scan(&id, &resp.Name, &countries, &resp.Active, &resp.ActiveRates); err != nil {
			return nil, err
		}

		zoneID, idErr := kernel.UUIDFromGoogle(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = zoneID
		resp.Countries = []string(countries)
		zones = append(zones, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}
