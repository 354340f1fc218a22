package queries

import (
	"context"
	"database/sql"
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, customer_id, forwarder_id, warehouse_id,
			weight_kg, declared_value, courier, status, label_printed,
			created_at, received_at, packed_at, shipped_at, delivered_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var resp GetOrderQueryResponse
	var ids [4]uuid.UUID
	err := row.Scan(
		&ids[0], &ids[1], &ids[2], &ids[3],
		&resp.WeightKg, &resp.DeclaredValue, &resp.Courier, &resp.Status, &resp.LabelPrinted,
		&resp.CreatedAt, &resp.ReceivedAt, &resp.PackedAt, &resp.ShippedAt, &resp.DeliveredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	targets := []*kernel.UUID{&resp.ID, &resp.CustomerID, &resp.ForwarderID, &resp.WarehouseID}
	for i, raw := range ids {
		id, idErr := kernel.UUIDFromGoogle(raw)
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		*targets[i] = id
	}

	return resp, nil
}
