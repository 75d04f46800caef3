package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/newsdesk/newsroom/internal/api/wire"
	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

// ----------------------------------------------------------------------------
// Stub facade
// ----------------------------------------------------------------------------

type stubAuthFacade struct {
	users map[string]string // username -> password
}

func (s *stubAuthFacade) Register(_ context.Context, in ports.RegistrationInput) (*ports.UserSummary, error) {
	if _, ok := s.users[in.Username]; ok {
		return nil, domain.UsernameReserved(in.Username)
	}
	s.users[in.Username] = in.Password
	return &ports.UserSummary{ID: int64(len(s.users)), Username: in.Username, Active: true, Roles: domain.NewRoles(domain.RoleSubscriber)}, nil
}

func (s *stubAuthFacade) Login(ctx context.Context, username, password string) (string, *ports.UserSummary, error) {
	u, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	return "token-" + username, &ports.UserSummary{ID: u.ID, Username: u.Username, Active: true, Roles: u.Roles}, nil
}

func (s *stubAuthFacade) Authenticate(_ context.Context, username, password string) (*domain.User, error) {
	if pw, ok := s.users[username]; !ok || pw != password {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.User{ID: 1, Username: username, Active: true, Roles: domain.NewRoles(domain.RoleSubscriber)}, nil
}

func newAuthStub() *stubAuthFacade {
	return &stubAuthFacade{users: map[string]string{"alice": "secret"}}
}

// ----------------------------------------------------------------------------
// Register
// ----------------------------------------------------------------------------

func TestRegisterHandler_Success(t *testing.T) {
	c, rec := newContext(request{method: http.MethodPost, target: "/api/auth/register", json: true,
		body: []byte(`{"username":"bob","password":"hunter2"}`)})

	if err := NewAuthHandler(newAuthStub()).Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var body userSimpleDto
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Username != "bob" || !body.Active || len(body.Roles) != 1 || body.Roles[0] != "SUBSCRIBER" || body.Password != "" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestRegisterHandler_Duplicate(t *testing.T) {
	c, _ := newContext(request{method: http.MethodPost, target: "/api/auth/register", json: true,
		body: []byte(`{"username":"alice","password":"hunter2"}`)})

	if err := NewAuthHandler(newAuthStub()).Register(c); !errors.Is(err, domain.ErrUsernameReserved) {
		t.Fatalf("expected ErrUsernameReserved, got %v", err)
	}
}

func TestRegisterHandler_Invalid(t *testing.T) {
	for _, body := range []string{
		`{"username":"bob"}`,
		`{"username":"bob","password":"abc"}`,
		`{"password":"hunter2"}`,
	} {
		c, _ := newContext(request{method: http.MethodPost, target: "/api/auth/register", json: true, body: []byte(body)})
		if err := NewAuthHandler(newAuthStub()).Register(c); !errors.Is(err, domain.ErrBadRequestParameters) {
			t.Errorf("%s: expected ErrBadRequestParameters, got %v", body, err)
		}
	}
}

// ----------------------------------------------------------------------------
// Login
// ----------------------------------------------------------------------------

func TestLoginHandler_Success(t *testing.T) {
	c, rec := newContext(request{method: http.MethodPost, target: "/api/auth/login", json: true,
		body: []byte(`{"username":"alice","password":"secret"}`)})

	if err := NewAuthHandler(newAuthStub()).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Token != "token-alice" || body.User.Username != "alice" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestLoginHandler_Protobuf(t *testing.T) {
	var req []byte
	req = wire.AppendString(req, 1, "alice")
	req = wire.AppendString(req, 2, "secret")
	c, rec := newContext(request{method: http.MethodPost, target: "/api/auth/login", body: req})

	if err := NewAuthHandler(newAuthStub()).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	fields, err := decodeFields(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(fields[1]) != 1 || fields[1][0].String() != "token-alice" {
		t.Fatalf("unexpected token field: %v", fields[1])
	}
	var user userSimpleDto
	if err := user.UnmarshalProto(fields[2][0].Bytes); err != nil || user.Username != "alice" {
		t.Fatalf("unexpected user: %+v %v", user, err)
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	c, _ := newContext(request{method: http.MethodPost, target: "/api/auth/login", json: true,
		body: []byte(`{"username":"alice","password":"nope"}`)})

	if err := NewAuthHandler(newAuthStub()).Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
