package queries

import (
	"context"
	"database/sql"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns the order's history oldest first. Entries with the same
// timestamp keep a stable order by id.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID().Bytes()

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)`, orderID).Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	rows, err := db.Raw(`
		SELECT
			id, previous_status, new_status, actor_id, actor_type, notes,
			scan_barcode, scan_location, scan_device, created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]GetOrderHistoryQueryResponse, 0)
	for rows.Next() {
		var resp GetOrderHistoryQueryResponse
		var id uuid.UUID
		var barcode, location, device sql.NullString

		err = rows.Scan(
			&id, &resp.PreviousStatus, &resp.NewStatus, &resp.ActorID, &resp.ActorType, &resp.Notes,
			&barcode, &location, &device, &resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromGoogle(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = entryID

		if barcode.Valid {
			resp.Scan = &ScanResponse{Barcode: barcode.String, Location: location.String, Device: device.String}
		}
		history = append(history, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
