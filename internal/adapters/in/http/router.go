package http

import (
	"log/slog"
	"net/http"

	"forwarding/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// BaseURL prefixes every API route.
const BaseURL = "/api/v1"

// Telemetry is what the router needs from the metrics registry.
type Telemetry interface {
	RequestObserver
	Handler() http.Handler
}

// NewRouter builds the echo instance: API routes under BaseURL, validated
// against the OpenAPI document, plus /health, /metrics and /swagger/*.
func NewRouter(server *Server, telemetry Telemetry, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger.With("component", "http"))
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(MetricsMiddleware(telemetry))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(telemetry.Handler()))

	if err := registerSwaggerDoc(); err != nil {
		return nil, err
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validate, err := OpenAPIValidator(swagger, BaseURL)
	if err != nil {
		return nil, err
	}

	api := e.Group(BaseURL, validate)
	servers.RegisterHandlers(api, server)

	return e, nil
}
