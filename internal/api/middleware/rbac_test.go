package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/newsroom/internal/core/domain"
)

func TestRBAC_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ActorKey, &domain.User{ID: 1, Roles: domain.NewRoles(domain.RoleJournalist, domain.RoleSubscriber)})

	called := false
	mw := RBAC(domain.RoleAdmin, domain.RoleJournalist)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_Forbids(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ActorKey, &domain.User{ID: 4, Roles: domain.NewRoles(domain.RoleSubscriber)})

	mw := RBAC(domain.RoleAdmin, domain.RoleJournalist)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	if !errors.Is(err, domain.ErrNotEnoughRights) {
		t.Fatalf("expected ErrNotEnoughRights, got %v", err)
	}
	var nre *domain.NotEnoughRightsError
	if !errors.As(err, &nre) || nre.ActorID != 4 {
		t.Fatalf("unexpected error payload: %+v", nre)
	}
}

func TestRBAC_NoActor(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RBAC(domain.AllRoles...)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	var he *echo.HTTPError
	if err := handler(c); !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
