package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Register a forwarder
	// (POST /forwarders)
	RegisterForwarder(ctx echo.Context) error

	// Replace consolidation settings
	// (PUT /forwarders/{forwarderId}/consolidation)
	ConfigureConsolidation(ctx echo.Context, forwarderId openapi_types.UUID) error

	// List zones of a forwarder
	// (GET /forwarders/{forwarderId}/zones)
	ListZones(ctx echo.Context, forwarderId openapi_types.UUID, params ListZonesParams) error

	// Create a shipping zone
	// (POST /forwarders/{forwarderId}/zones)
	CreateZone(ctx echo.Context, forwarderId openapi_types.UUID) error

	// Replace the countries of a zone
	// (PUT /forwarders/{forwarderId}/zones/{zoneId}/countries)
	UpdateZoneCountries(ctx echo.Context, forwarderId openapi_types.UUID, zoneId openapi_types.UUID) error

	// Deactivate a zone and its rates
	// (DELETE /forwarders/{forwarderId}/zones/{zoneId})
	DeactivateZone(ctx echo.Context, forwarderId openapi_types.UUID, zoneId openapi_types.UUID) error

	// Create a shipping rate
	// (POST /forwarders/{forwarderId}/zones/{zoneId}/rates)
	CreateRate(ctx echo.Context, forwarderId openapi_types.UUID, zoneId openapi_types.UUID) error

	// Deactivate a shipping rate
	// (DELETE /forwarders/{forwarderId}/rates/{rateId})
	DeactivateRate(ctx echo.Context, forwarderId openapi_types.UUID, rateId openapi_types.UUID) error

	// Quote a shipment
	// (POST /forwarders/{forwarderId}/quotes)
	CalculateRate(ctx echo.Context, forwarderId openapi_types.UUID) error

	// Create an order
	// (POST /orders)
	CreateOrder(ctx echo.Context) error

	// Get an order
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error

	// Move an order through the status pipeline
	// (POST /orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error

	// Mark the shipping label as printed
	// (POST /orders/{orderId}/label)
	MarkLabelPrinted(ctx echo.Context, orderId openapi_types.UUID) error

	// Get the status history of an order
	// (GET /orders/{orderId}/history)
	GetOrderHistory(ctx echo.Context, orderId openapi_types.UUID) error

	// Scans per staff member and day
	// (GET /warehouses/{warehouseId}/staff-stats)
	GetStaffDailyStats(ctx echo.Context, warehouseId openapi_types.UUID, params GetStaffDailyStatsParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// RegisterForwarder converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterForwarder(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RegisterForwarder(ctx)
	return err
}

// ConfigureConsolidation converts echo context to params.
func (w *ServerInterfaceWrapper) ConfigureConsolidation(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "forwarderId" -------------
	var forwarderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "forwarderId", ctx.Param("forwarderId"), &forwarderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter forwarderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ConfigureConsolidation(ctx, forwarderId)
	return err
}

// ListZones converts echo context to params.
func (w *ServerInterfaceWrapper) ListZones(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "forwarderId" -------------
	var forwarderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "forwarderId", ctx.Param("forwarderId"), &forwarderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter forwarderId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params ListZonesParams
	// ------------- Optional query parameter "activeOnly" -------------

	err = runtime.BindQueryParameter("form", true, false, "activeOnly", ctx.QueryParams(), &params.ActiveOnly)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter activeOnly: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListZones(ctx, forwarderId, params)
	return err
}

// CreateZone converts echo context to params.
func (w *ServerInterfaceWrapper) CreateZone(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "forwarderId" -------------
	var forwarderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "forwarderId", ctx.Param("forwarderId"), &forwarderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter forwarderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateZone(ctx, forwarderId)
	return err
}

// UpdateZoneCountries converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateZoneCountries(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "forwarderId" -------------
	var forwarderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "forwarderId", ctx.Param("forwarderId"), &forwarderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter forwarderId: %s", err))
	}

	// ------------- Path parameter "zoneId" -------------
	var zoneId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "zoneId", ctx.Param("zoneId"), &zoneId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter zoneId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateZoneCountries(ctx, forwarderId, zoneId)
	return err
}

// DeactivateZone converts echo context to params.
func (w *ServerInterfaceWrapper) DeactivateZone(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "forwarderId" -------------
	var forwarderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "forwarderId", ctx.Param("forwarderId"), &forwarderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter forwarderId: %s", err))
	}

	// ------------- Path parameter "zoneId" -------------
	var zoneId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "zoneId", ctx.Param("zoneId"), &zoneId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter zoneId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeactivateZone(ctx, forwarderId, zoneId)
	return err
}

// CreateRate converts echo context to params.
func (w *ServerInterfaceWrapper) CreateRate(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "forwarderId" -------------
	var forwarderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "forwarderId", ctx.Param("forwarderId"), &forwarderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter forwarderId: %s", err))
	}

	// ------------- Path parameter "zoneId" -------------
	var zoneId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "zoneId", ctx.Param("zoneId"), &zoneId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter zoneId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateRate(ctx, forwarderId, zoneId)
	return err
}

// DeactivateRate converts echo context to params.
func (w *ServerInterfaceWrapper) DeactivateRate(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "forwarderId" -------------
	var forwarderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "forwarderId", ctx.Param("forwarderId"), &forwarderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter forwarderId: %s", err))
	}

	// ------------- Path parameter "rateId" -------------
	var rateId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "rateId", ctx.Param("rateId"), &rateId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter rateId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeactivateRate(ctx, forwarderId, rateId)
	return err
}

// CalculateRate converts echo context to params.
func (w *ServerInterfaceWrapper) CalculateRate(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "forwarderId" -------------
	var forwarderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "forwarderId", ctx.Param("forwarderId"), &forwarderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter forwarderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CalculateRate(ctx, forwarderId)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOrderStatus(ctx, orderId)
	return err
}

// MarkLabelPrinted converts echo context to params.
func (w *ServerInterfaceWrapper) MarkLabelPrinted(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.MarkLabelPrinted(ctx, orderId)
	return err
}

// GetOrderHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderHistory(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrderHistory(ctx, orderId)
	return err
}

// GetStaffDailyStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetStaffDailyStats(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "warehouseId" -------------
	var warehouseId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "warehouseId", ctx.Param("warehouseId"), &warehouseId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter warehouseId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params GetStaffDailyStatsParams
	// ------------- Required query parameter "from" -------------

	err = runtime.BindQueryParameter("form", true, true, "from", ctx.QueryParams(), &params.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}

	// ------------- Required query parameter "to" -------------

	err = runtime.BindQueryParameter("form", true, true, "to", ctx.QueryParams(), &params.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetStaffDailyStats(ctx, warehouseId, params)
	return err
}

// EchoRouter is the subset of echo.Echo and echo.Group the handlers register on.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/forwarders", wrapper.RegisterForwarder)
	router.PUT(baseURL+"/forwarders/:forwarderId/consolidation", wrapper.ConfigureConsolidation)
	router.GET(baseURL+"/forwarders/:forwarderId/zones", wrapper.ListZones)
	router.POST(baseURL+"/forwarders/:forwarderId/zones", wrapper.CreateZone)
	router.PUT(baseURL+"/forwarders/:forwarderId/zones/:zoneId/countries", wrapper.UpdateZoneCountries)
	router.DELETE(baseURL+"/forwarders/:forwarderId/zones/:zoneId", wrapper.DeactivateZone)
	router.POST(baseURL+"/forwarders/:forwarderId/zones/:zoneId/rates", wrapper.CreateRate)
	router.DELETE(baseURL+"/forwarders/:forwarderId/rates/:rateId", wrapper.DeactivateRate)
	router.POST(baseURL+"/forwarders/:forwarderId/quotes", wrapper.CalculateRate)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/orders/:orderId/status", wrapper.UpdateOrderStatus)
	router.POST(baseURL+"/orders/:orderId/label", wrapper.MarkLabelPrinted)
	router.GET(baseURL+"/orders/:orderId/history", wrapper.GetOrderHistory)
	router.GET(baseURL+"/warehouses/:warehouseId/staff-stats", wrapper.GetStaffDailyStats)
}
