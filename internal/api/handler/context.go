package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/newsroom/internal/api/middleware"
	"github.com/newsdesk/newsroom/internal/core/domain"
)

// ctxActor extracts the user injected by the Auth middleware and fails fast
// with 401 when the route was mounted without it.
func ctxActor(c echo.Context) (*domain.User, error) {
	actor := middleware.Actor(c)
	if actor == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return actor, nil
}
