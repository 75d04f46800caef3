package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/newsroom/internal/api/metrics"
	"github.com/newsdesk/newsroom/internal/core/domain"
)

// ActorKey is the echo context key holding the authenticated *domain.User.
const ActorKey = "actor"

// TokenParser validates a bearer token and returns the account id and
// username it was issued for.
type TokenParser interface {
	Parse(token string) (int64, string, error)
}

// UserLookup resolves the account a token was issued for.
type UserLookup interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

// CredentialChecker verifies username and password pairs.
type CredentialChecker interface {
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// Auth accepts either a bearer token or HTTP Basic credentials. The acting
// user is re-read from storage on every request and must be active.
func Auth(tokens TokenParser, users UserLookup, creds CredentialChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="newsroom"`)
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			ctx := c.Request().Context()
			var (
				actor  *domain.User
				err    error
				scheme = strings.ToLower(parts[0])
			)
			switch scheme {
			case "bearer":
				actor, err = fromToken(ctx, tokens, users, parts[1])
			case "basic":
				username, password, ok := c.Request().BasicAuth()
				if !ok {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
				}
				actor, err = creds.Authenticate(ctx, username, password)
			default:
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			if err != nil {
				if errors.Is(err, domain.ErrInvalidCredentials) {
					metrics.AuthFailuresTotal.WithLabelValues(scheme).Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
				}
				return err
			}

			c.Set(ActorKey, actor)
			return next(c)
		}
	}
}

func fromToken(ctx context.Context, tokens TokenParser, users UserLookup, token string) (*domain.User, error) {
	id, username, err := tokens.Parse(token)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	u, err := users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	// A renamed account invalidates tokens issued under the old name.
	if !u.Active || u.Username != username {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

// Actor returns the authenticated user, or nil outside the Auth middleware.
func Actor(c echo.Context) *domain.User {
	u, _ := c.Get(ActorKey).(*domain.User)
	return u
}
