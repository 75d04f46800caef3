package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/newsroom/internal/core/domain"
)

// RBAC admits actors holding at least one of the allowed roles.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := domain.NewRoles(allowedRoles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := Actor(c)
			if actor == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if actor.Roles&allowed == 0 {
				return domain.Deny("access "+c.Request().Method+" "+c.Path(), actor, 0)
			}
			return next(c)
		}
	}
}
