// Package servers provides primitives to interact with the openapi HTTP API.
//
// The package is maintained by hand. It follows the layout of oapi-codegen's
// models and echo-server output, but nothing regenerates it: edit openapi.yaml
// and these files together. openapi_sync_test.go fails when models, enum
// values or ServerInterface methods drift from the document.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for ActorType.
const (
	ActorTypeCustomer  ActorType = "customer"
	ActorTypeForwarder ActorType = "forwarder"
	ActorTypeStaff     ActorType = "staff"
	ActorTypeSystem    ActorType = "system"
)

// Defines values for OrderStatus.
const (
	OrderStatusArrivedAtWarehouse OrderStatus = "arrived_at_warehouse"
	OrderStatusAwaitingPickup     OrderStatus = "awaiting_pickup"
	OrderStatusDelivered          OrderStatus = "delivered"
	OrderStatusInTransit          OrderStatus = "in_transit"
	OrderStatusIncoming           OrderStatus = "incoming"
	OrderStatusPacked             OrderStatus = "packed"
	OrderStatusReceived           OrderStatus = "received"
	OrderStatusShipped            OrderStatus = "shipped"
)

// Defines values for ServiceType.
const (
	Economy   ServiceType = "economy"
	Express   ServiceType = "express"
	Overnight ServiceType = "overnight"
	Standard  ServiceType = "standard"
)

// ActorType defines model for ActorType.
type ActorType string

// ConsolidationSettings defines model for ConsolidationSettings.
type ConsolidationSettings struct {
	DiscountPercent   float64 `json:"discountPercent" validate:"gte=0,lte=100"`
	Enabled           bool    `json:"enabled"`
	HoldingPeriodDays int     `json:"holdingPeriodDays"`
}

// CreatedResource defines model for CreatedResource.
type CreatedResource struct {
	Id openapi_types.UUID `json:"id"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FeeBreakdown defines model for FeeBreakdown.
type FeeBreakdown struct {
	Base          float64 `json:"base"`
	Discount      float64 `json:"discount"`
	FuelSurcharge float64 `json:"fuelSurcharge"`
	Handling      float64 `json:"handling"`
	Insurance     float64 `json:"insurance"`
}

// Fees defines model for Fees.
type Fees struct {
	FuelSurcharge *float64 `json:"fuelSurcharge,omitempty" validate:"omitempty,gte=0"`
	Handling      float64  `json:"handling" validate:"gte=0"`
	Insurance     *float64 `json:"insurance,omitempty" validate:"omitempty,gte=0"`
}

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	ActorId        string             `json:"actorId"`
	ActorType      ActorType          `json:"actorType"`
	CreatedAt      time.Time          `json:"createdAt"`
	Id             openapi_types.UUID `json:"id"`
	NewStatus      string             `json:"newStatus"`
	Notes          *string            `json:"notes,omitempty"`
	PreviousStatus string             `json:"previousStatus"`
	Scan           *ScanData          `json:"scan,omitempty"`
}

// NewForwarder defines model for NewForwarder.
type NewForwarder struct {
	Name string `json:"name" validate:"required"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Courier       string             `json:"courier" validate:"required"`
	CustomerId    openapi_types.UUID `json:"customerId"`
	DeclaredValue float64            `json:"declaredValue" validate:"gte=0"`
	ForwarderId   openapi_types.UUID `json:"forwarderId"`
	WarehouseId   openapi_types.UUID `json:"warehouseId"`
	WeightKg      float64            `json:"weightKg" validate:"gt=0"`
}

// NewRate defines model for NewRate.
type NewRate struct {
	Courier     string       `json:"courier" validate:"required"`
	Fees        Fees         `json:"fees"`
	ServiceType ServiceType  `json:"serviceType" validate:"required"`
	Slabs       []WeightSlab `json:"slabs" validate:"required,min=1,dive"`
	Transit     TransitTime  `json:"transit"`
}

// NewZone defines model for NewZone.
type NewZone struct {
	Countries []string `json:"countries" validate:"required,min=1"`
	Name      string   `json:"name" validate:"required"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt     time.Time          `json:"createdAt"`
	Courier       string             `json:"courier"`
	CustomerId    openapi_types.UUID `json:"customerId"`
	DeclaredValue float64            `json:"declaredValue"`
	DeliveredAt   *time.Time         `json:"deliveredAt,omitempty"`
	ForwarderId   openapi_types.UUID `json:"forwarderId"`
	Id            openapi_types.UUID `json:"id"`
	LabelPrinted  bool               `json:"labelPrinted"`
	PackedAt      *time.Time         `json:"packedAt,omitempty"`
	ReceivedAt    *time.Time         `json:"receivedAt,omitempty"`
	ShippedAt     *time.Time         `json:"shippedAt,omitempty"`
	Status        OrderStatus        `json:"status"`
	WarehouseId   openapi_types.UUID `json:"warehouseId"`
	WeightKg      float64            `json:"weightKg"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// Quote defines model for Quote.
type Quote struct {
	BaseCost       float64      `json:"baseCost"`
	Breakdown      FeeBreakdown `json:"breakdown"`
	Courier        string       `json:"courier"`
	ServiceType    ServiceType  `json:"serviceType"`
	SlabLabel      string       `json:"slabLabel"`
	TotalCost      float64      `json:"totalCost"`
	TransitMaxDays int          `json:"transitMaxDays"`
	TransitMinDays int          `json:"transitMinDays"`
	ZoneName       string       `json:"zoneName"`
}

// QuoteRequest defines model for QuoteRequest.
type QuoteRequest struct {
	Consolidated *bool       `json:"consolidated,omitempty"`
	Courier      string      `json:"courier" validate:"required"`
	Destination  string      `json:"destination" validate:"required,len=2"`
	ServiceType  ServiceType `json:"serviceType" validate:"required"`
	WeightKg     float64     `json:"weightKg" validate:"gt=0"`
}

// ScanData defines model for ScanData.
type ScanData struct {
	Barcode  string  `json:"barcode" validate:"required"`
	Device   *string `json:"device,omitempty"`
	Location *string `json:"location,omitempty"`
}

// ServiceType defines model for ServiceType.
type ServiceType string

// StaffDailyStat defines model for StaffDailyStat.
type StaffDailyStat struct {
	Day     openapi_types.Date `json:"day"`
	Scans   int64              `json:"scans"`
	StaffId string             `json:"staffId"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	ActorId   string      `json:"actorId" validate:"required"`
	ActorType ActorType   `json:"actorType" validate:"required"`
	Notes     *string     `json:"notes,omitempty"`
	Scan      *ScanData   `json:"scan,omitempty"`
	Status    OrderStatus `json:"status" validate:"required"`
}

// TransitTime defines model for TransitTime.
type TransitTime struct {
	MaxDays int `json:"maxDays" validate:"gte=0"`
	MinDays int `json:"minDays" validate:"gte=0"`
}

// WeightSlab defines model for WeightSlab.
type WeightSlab struct {
	FlatRate  *float64 `json:"flatRate,omitempty"`
	Label     *string  `json:"label,omitempty"`
	MaxWeight *float64 `json:"maxWeight,omitempty"`
	MinWeight float64  `json:"minWeight" validate:"gte=0"`
	RatePerKg *float64 `json:"ratePerKg,omitempty"`
}

// Zone defines model for Zone.
type Zone struct {
	Active      bool               `json:"active"`
	ActiveRates int                `json:"activeRates"`
	Countries   []string           `json:"countries"`
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
}

// ZoneCountries defines model for ZoneCountries.
type ZoneCountries struct {
	Countries []string `json:"countries" validate:"required,min=1"`
}

// ListZonesParams defines parameters for ListZones.
type ListZonesParams struct {
	ActiveOnly *bool `form:"activeOnly,omitempty" json:"activeOnly,omitempty"`
}

// GetStaffDailyStatsParams defines parameters for GetStaffDailyStats.
type GetStaffDailyStatsParams struct {
	From openapi_types.Date `form:"from" json:"from"`
	To   openapi_types.Date `form:"to" json:"to"`
}

// RegisterForwarderJSONRequestBody defines body for RegisterForwarder for application/json ContentType.
type RegisterForwarderJSONRequestBody = NewForwarder

// ConfigureConsolidationJSONRequestBody defines body for ConfigureConsolidation for application/json ContentType.
type ConfigureConsolidationJSONRequestBody = ConsolidationSettings

// CreateZoneJSONRequestBody defines body for CreateZone for application/json ContentType.
type CreateZoneJSONRequestBody = NewZone

// UpdateZoneCountriesJSONRequestBody defines body for UpdateZoneCountries for application/json ContentType.
type UpdateZoneCountriesJSONRequestBody = ZoneCountries

// CreateRateJSONRequestBody defines body for CreateRate for application/json ContentType.
type CreateRateJSONRequestBody = NewRate

// CalculateRateJSONRequestBody defines body for CalculateRate for application/json ContentType.
type CalculateRateJSONRequestBody = QuoteRequest

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// UpdateOrderStatusJSONRequestBody defines body for UpdateOrderStatus for application/json ContentType.
type UpdateOrderStatusJSONRequestBody = StatusUpdate
