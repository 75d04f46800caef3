package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/newsdesk/newsroom/internal/api/metrics"
	"github.com/newsdesk/newsroom/internal/api/wire"
	"github.com/newsdesk/newsroom/internal/core/domain"
)

// errorInfo is the canonical error envelope for all API errors.
type errorInfo struct {
	URL       string `json:"url"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
//   - Logs expected kinds at debug and unexpected errors at error level.
//   - Renders {"url", "message", "timestamp"} as JSON regardless of Accept.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorInfo{
			URL:       requestURL(c),
			Message:   msg,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (router 404/405, middleware 401, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	code := 0
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrNotEnoughRights):
		code = http.StatusForbidden
		metrics.AccessDeniedTotal.WithLabelValues(c.Request().Method).Inc()
	case errors.Is(err, domain.ErrBadRequestParameters),
		errors.Is(err, domain.ErrUsernameReserved),
		errors.Is(err, domain.ErrMalformedQueryParameter),
		errors.Is(err, domain.ErrUnknownRole),
		errors.Is(err, wire.ErrMalformed):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	}
	if code != 0 {
		log.Debug().
			Err(err).
			Int("status", code).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("request rejected")
		return code, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

func requestURL(c echo.Context) string {
	r := c.Request()
	return c.Scheme() + "://" + r.Host + r.URL.Path
}
