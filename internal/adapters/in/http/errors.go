package http

import (
	"errors"
	"log/slog"
	"net/http"

	"forwarding/internal/core/domain/model/rate"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/generated/servers"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// statusFor maps use case errors onto response codes. Malformed requests are
// rejected with 400 before they reach a use case; domain validation is 422.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case isValidation(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func isValidation(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

// quoteResult labels a CalculateRate outcome for the quote counter.
func quoteResult(err error) string {
	switch {
	case err == nil:
		return metrics.QuoteOK
	case errors.Is(err, services.ErrNoZoneConfigured):
		return metrics.QuoteNoZone
	case errors.Is(err, services.ErrNoRateConfigured):
		return metrics.QuoteNoRate
	case errors.Is(err, rate.ErrNoWeightSlabConfigured):
		return metrics.QuoteNoSlab
	case errors.Is(err, errs.ErrObjectNotFound):
		return metrics.QuoteNotFound
	case isValidation(err):
		return metrics.QuoteInvalid
	default:
		return metrics.QuoteError
	}
}

// fail writes err as an Error body. Internal errors are logged and their
// message is not exposed.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// NewErrorHandler renders errors that escape the handlers (binding failures,
// unknown routes, panics recovered by middleware) in the same Error shape.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error", "path", ctx.Path(), "error", err)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, servers.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.Error("write error response", "error", writeErr)
		}
	}
}
