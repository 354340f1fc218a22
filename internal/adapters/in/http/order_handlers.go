package http

import (
	"net/http"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateOrder handles POST /api/v1/orders - creates a new order in incoming.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return badRequest(ctx, err.Error())
	}

	customerID, forwarderID, err := pairOfIDs(body.CustomerId, body.ForwarderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	warehouseID, err := kernel.UUIDFromGoogle(body.WarehouseId)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, forwarderID, warehouseID,
		body.WeightKg, body.DeclaredValue, body.Courier,
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: orderID.Bytes()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:            o.ID.Bytes(),
		CustomerId:    o.CustomerID.Bytes(),
		ForwarderId:   o.ForwarderID.Bytes(),
		WarehouseId:   o.WarehouseID.Bytes(),
		WeightKg:      o.WeightKg,
		DeclaredValue: o.DeclaredValue,
		Courier:       o.Courier,
		Status:        servers.OrderStatus(o.Status),
		LabelPrinted:  o.LabelPrinted,
		CreatedAt:     o.CreatedAt,
		ReceivedAt:    o.ReceivedAt,
		PackedAt:      o.PackedAt,
		ShippedAt:     o.ShippedAt,
		DeliveredAt:   o.DeliveredAt,
	})
}

// UpdateOrderStatus handles POST /api/v1/orders/{orderId}/status and
// responds with the appended history entry.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var scan *commands.ScanInput
	if body.Scan != nil {
		scan = &commands.ScanInput{
			Barcode:  body.Scan.Barcode,
			Location: deref(body.Scan.Location),
			Device:   deref(body.Scan.Device),
		}
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID,
		string(body.Status),
		body.ActorId,
		string(body.ActorType),
		deref(body.Notes),
		scan,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	entry, err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.recorder.RecordStatusTransition(
		entry.PreviousStatus().String(),
		entry.NewStatus().String(),
		entry.Actor().Type().String(),
	)

	return ctx.JSON(http.StatusOK, historyEntryFromDomain(entry))
}

// MarkLabelPrinted handles POST /api/v1/orders/{orderId}/label.
func (s *Server) MarkLabelPrinted(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkLabelPrintedCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.MarkLabelPrinted.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderHistory handles GET /api/v1/orders/{orderId}/history.
func (s *Server) GetOrderHistory(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	entries, err := s.handlers.GetOrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.HistoryEntry, len(entries))
	for i, e := range entries {
		item := servers.HistoryEntry{
			Id:             e.ID.Bytes(),
			PreviousStatus: e.PreviousStatus,
			NewStatus:      e.NewStatus,
			ActorId:        e.ActorID,
			ActorType:      servers.ActorType(e.ActorType),
			Notes:          optional(e.Notes),
			CreatedAt:      e.CreatedAt,
		}
		if e.Scan != nil {
			item.Scan = &servers.ScanData{
				Barcode:  e.Scan.Barcode,
				Location: optional(e.Scan.Location),
				Device:   optional(e.Scan.Device),
			}
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStaffDailyStats handles GET /api/v1/warehouses/{warehouseId}/staff-stats.
func (s *Server) GetStaffDailyStats(
	ctx echo.Context,
	warehouseId openapi_types.UUID,
	params servers.GetStaffDailyStatsParams,
) error {
	warehouseID, err := kernel.UUIDFromGoogle(warehouseId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetStaffDailyStatsQuery(warehouseID, params.From.Time, params.To.Time)
	if err != nil {
		return s.fail(ctx, err)
	}

	stats, err := s.handlers.GetStaffDailyStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.StaffDailyStat, len(stats))
	for i, st := range stats {
		response[i] = servers.StaffDailyStat{
			Day:     openapi_types.Date{Time: st.Day},
			StaffId: st.StaffID,
			Scans:   st.Scans,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func historyEntryFromDomain(e *order.HistoryEntry) servers.HistoryEntry {
	out := servers.HistoryEntry{
		Id:             e.ID().Bytes(),
		PreviousStatus: e.PreviousStatus().String(),
		NewStatus:      e.NewStatus().String(),
		ActorId:        e.Actor().ID(),
		ActorType:      servers.ActorType(e.Actor().Type()),
		Notes:          optional(e.Notes()),
		CreatedAt:      e.CreatedAt(),
	}
	if scan := e.Scan(); scan != nil {
		out.Scan = &servers.ScanData{
			Barcode:  scan.Barcode(),
			Location: optional(scan.Location()),
			Device:   optional(scan.Device()),
		}
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
