package http

import (
	"context"
	"log/slog"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

// Use case handlers the server dispatches to. The application layer's
// handlers satisfy these; tests substitute mocks.
type (
	RegisterForwarderHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterForwarderCommand) error
	}
	ConfigureConsolidationHandler interface {
		Handle(ctx context.Context, cmd commands.ConfigureConsolidationCommand) error
	}
	CreateZoneHandler interface {
		Handle(ctx context.Context, cmd commands.CreateZoneCommand) error
	}
	UpdateZoneCountriesHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateZoneCountriesCommand) error
	}
	DeactivateZoneHandler interface {
		Handle(ctx context.Context, cmd commands.DeactivateZoneCommand) error
	}
	CreateRateHandler interface {
		Handle(ctx context.Context, cmd commands.CreateRateCommand) error
	}
	DeactivateRateHandler interface {
		Handle(ctx context.Context, cmd commands.DeactivateRateCommand) error
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.HistoryEntry, error)
	}
	MarkLabelPrintedHandler interface {
		Handle(ctx context.Context, cmd commands.MarkLabelPrintedCommand) error
	}

	CalculateRateHandler interface {
		Handle(ctx context.Context, query queries.CalculateRateQuery) (services.Quote, error)
	}
	ListZonesHandler interface {
		Handle(ctx context.Context, query queries.ListZonesQuery) ([]queries.ListZonesQueryResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	GetOrderHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.GetOrderHistoryQueryResponse, error)
	}
	GetStaffDailyStatsHandler interface {
		Handle(ctx context.Context, query queries.GetStaffDailyStatsQuery) ([]queries.GetStaffDailyStatsQueryResponse, error)
	}
)

// Recorder receives the business counters the server reports.
type Recorder interface {
	RecordRateQuote(result string)
	RecordStatusTransition(from, to, actorType string)
}

// Handlers groups the use cases behind the API.
type Handlers struct {
	// Command handlers
	RegisterForwarder      RegisterForwarderHandler
	ConfigureConsolidation ConfigureConsolidationHandler
	CreateZone             CreateZoneHandler
	UpdateZoneCountries    UpdateZoneCountriesHandler
	DeactivateZone         DeactivateZoneHandler
	CreateRate             CreateRateHandler
	DeactivateRate         DeactivateRateHandler
	CreateOrder            CreateOrderHandler
	UpdateOrderStatus      UpdateOrderStatusHandler
	MarkLabelPrinted       MarkLabelPrintedHandler

	// Query handlers
	CalculateRate      CalculateRateHandler
	ListZones          ListZonesHandler
	GetOrder           GetOrderHandler
	GetOrderHistory    GetOrderHistoryHandler
	GetStaffDailyStats GetStaffDailyStatsHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	recorder Recorder
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, recorder Recorder, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		recorder: recorder,
		logger:   logger.With("component", "http"),
	}
}
