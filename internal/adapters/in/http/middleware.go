package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"forwarding/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// RequestObserver receives one observation per served request.
type RequestObserver interface {
	RecordHTTPRequest(method, path string, status int, duration time.Duration)
}

// MetricsMiddleware records every request against its route pattern, so
// /orders/:orderId is a single series regardless of the id.
func MetricsMiddleware(observer RequestObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				switch {
				case errors.As(err, &he):
					status = he.Code
				case !c.Response().Committed:
					status = http.StatusInternalServerError
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			observer.RecordHTTPRequest(c.Request().Method, path, status, time.Since(start))
			return err
		}
	}
}

// OpenAPIValidator rejects requests under baseURL that do not match the
// OpenAPI document: unknown enum values, missing required fields, wrong
// parameter formats. Requests outside baseURL pass through untouched.
func OpenAPIValidator(swagger *openapi3.T, baseURL string) (echo.MiddlewareFunc, error) {
	// Routes are matched on the path below baseURL, independent of the host.
	swagger.Servers = nil

	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, baseURL+"/") {
				return next(c)
			}

			routed := req.Clone(req.Context())
			routed.URL.Path = strings.TrimPrefix(req.URL.Path, baseURL)
			routed.URL.RawPath = ""

			route, pathParams, err := router.FindRoute(routed)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    routed,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(err),
				})
			}

			// The filter consumed and restored the clone's body.
			req.Body = routed.Body
			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Error()
	}
	var secErr *openapi3filter.SecurityRequirementsError
	if errors.As(err, &secErr) {
		return secErr.Error()
	}
	return err.Error()
}
