package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/infrastructure/security"
)

// ----------------------------------------------------------------------------
// Stubs
// ----------------------------------------------------------------------------

type stubUsers map[string]*domain.User

func (s stubUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := s[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s stubUsers) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range s {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// stubCreds accepts "<username>:pw" for every known active user.
type stubCreds struct{ users stubUsers }

func (s stubCreds) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil || password != "pw" || !u.Active {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

type brokenCreds struct{}

func (brokenCreds) Authenticate(context.Context, string, string) (*domain.User, error) {
	return nil, errors.New("connection reset")
}

func testUsers() stubUsers {
	return stubUsers{
		"alice": {ID: 1, Username: "alice", Active: true, Roles: domain.NewRoles(domain.RoleJournalist)},
		"ghost": {ID: 2, Username: "ghost", Active: false, Roles: domain.NewRoles(domain.RoleSubscriber)},
	}
}

func runAuth(t *testing.T, mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, *domain.User) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var actor *domain.User
	handler := mw(func(c echo.Context) error {
		actor = Actor(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, actor
}

// ----------------------------------------------------------------------------
// Bearer
// ----------------------------------------------------------------------------

func TestAuthMiddleware_ValidToken(t *testing.T) {
	users := testUsers()
	issuer := security.NewJWTIssuer("secret", time.Hour)
	signed, err := issuer.Issue(users["alice"])
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rec, actor := runAuth(t, Auth(issuer, users, stubCreds{users}), "Bearer "+signed)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if actor == nil || actor.ID != 1 {
		t.Fatalf("actor not set: %+v", actor)
	}
}

func TestAuthMiddleware_TokenRejected(t *testing.T) {
	users := testUsers()
	issuer := security.NewJWTIssuer("secret", time.Hour)
	other := security.NewJWTIssuer("other-secret", time.Hour)

	inactive, _ := issuer.Issue(users["ghost"])
	unknown, _ := issuer.Issue(&domain.User{ID: 99, Username: "nobody"})
	foreign, _ := other.Issue(users["alice"])

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "not-a-token"},
		{"wrong secret", foreign},
		{"inactive account", inactive},
		{"unknown account", unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, actor := runAuth(t, Auth(issuer, users, stubCreds{users}), "Bearer "+tt.token)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if actor != nil {
				t.Fatalf("next must not run")
			}
		})
	}
}

func TestAuthMiddleware_TokenOfRenamedAccount(t *testing.T) {
	users := testUsers()
	issuer := security.NewJWTIssuer("secret", time.Hour)
	signed, err := issuer.Issue(users["alice"])
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	renamed := *users["alice"]
	renamed.Username = "alice-old"
	delete(users, "alice")
	users["alice-old"] = &renamed
	users["alice"] = &domain.User{ID: 3, Username: "alice", Active: true, Roles: domain.NewRoles(domain.RoleAdmin)}

	rec, actor := runAuth(t, Auth(issuer, users, stubCreds{users}), "Bearer "+signed)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if actor != nil {
		t.Fatalf("token resolved to %+v", actor)
	}
}

// ----------------------------------------------------------------------------
// Basic
// ----------------------------------------------------------------------------

func TestAuthMiddleware_Basic(t *testing.T) {
	users := testUsers()
	issuer := security.NewJWTIssuer("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("alice", "pw")
	rec, actor := runAuth(t, Auth(issuer, users, stubCreds{users}), req.Header.Get("Authorization"))
	if rec.Code != http.StatusOK || actor == nil || actor.Username != "alice" {
		t.Fatalf("expected alice to be authenticated, got %d %+v", rec.Code, actor)
	}

	req.SetBasicAuth("alice", "wrong")
	rec, _ = runAuth(t, Auth(issuer, users, stubCreds{users}), req.Header.Get("Authorization"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec, _ = runAuth(t, Auth(issuer, users, stubCreds{users}), "Basic !!!")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for undecodable credentials, got %d", rec.Code)
	}
}

func TestAuthMiddleware_StorageErrorPropagates(t *testing.T) {
	users := testUsers()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("alice", "pw")

	rec, _ := runAuth(t, Auth(security.NewJWTIssuer("secret", time.Hour), users, brokenCreds{}), req.Header.Get("Authorization"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

// ----------------------------------------------------------------------------
// Header shape
// ----------------------------------------------------------------------------

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	users := testUsers()
	rec, _ := runAuth(t, Auth(security.NewJWTIssuer("secret", time.Hour), users, stubCreds{users}), "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Header().Get(echo.HeaderWWWAuthenticate) == "" {
		t.Fatalf("expected WWW-Authenticate challenge")
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	users := testUsers()
	for _, h := range []string{"Token abc", "Bearer"} {
		rec, _ := runAuth(t, Auth(security.NewJWTIssuer("secret", time.Hour), users, stubCreds{users}), h)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %d", h, rec.Code)
		}
	}
}
