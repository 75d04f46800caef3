package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/newsdesk/newsroom/internal/api/wire"
	"github.com/newsdesk/newsroom/internal/core/facade"
	"github.com/newsdesk/newsroom/internal/core/service"
	"github.com/newsdesk/newsroom/internal/infrastructure/db/memory"
	"github.com/newsdesk/newsroom/internal/infrastructure/http/handlers"
	"github.com/newsdesk/newsroom/internal/infrastructure/security"
)

// ----------------------------------------------------------------------------
// Fixture: the full stack over the in-memory backend
// ----------------------------------------------------------------------------

type server struct {
	e      *echo.Echo
	tokens *security.JWTIssuer
}

func newServer(t *testing.T) *server {
	t.Helper()
	store := memory.NewStore()
	newsRepo, commentRepo, userRepo := store.Repositories()
	log := zerolog.Nop()

	news := service.NewNewsService(newsRepo, log)
	comments := service.NewCommentService(commentRepo, log)
	users := service.NewUserService(userRepo, log)
	hasher := security.NewBcryptHasher(4)
	tokens := security.NewJWTIssuer("test-secret", time.Hour)
	auth := facade.NewAuthFacade(users, hasher, tokens, log)

	if _, err := auth.EnsureAdmin(context.Background(), "admin", "admin-pw"); err != nil {
		t.Fatalf("bootstrap admin: %v", err)
	}

	e := NewRouter(Dependencies{
		News:        facade.NewNewsFacade(news, comments, log),
		Comments:    facade.NewCommentFacade(comments, news, log),
		Users:       facade.NewUserFacade(users, news, comments, hasher, log),
		Auth:        auth,
		Tokens:      tokens,
		Accounts:    users,
		Backends:    map[string]handlers.Pinger{"memory": store},
		Registry:    prometheus.NewRegistry(),
		MaxPageSize: 50,
		Logger:      log,
	})
	return &server{e: e, tokens: tokens}
}

type call struct {
	method string
	path   string
	body   any
	basic  [2]string
	bearer string
}

func (s *server) do(t *testing.T, c call) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if c.body != nil {
		if err := json.NewEncoder(&buf).Encode(c.body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(c.method, c.path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	if c.basic[0] != "" {
		req.SetBasicAuth(c.basic[0], c.basic[1])
	}
	if c.bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+c.bearer)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return v
}

func expect(t *testing.T, rec *httptest.ResponseRecorder, code int) {
	t.Helper()
	if rec.Code != code {
		t.Fatalf("expected %d, got %d: %s", code, rec.Code, rec.Body.String())
	}
}

type idBody struct {
	ID int64 `json:"id"`
}

// ----------------------------------------------------------------------------
// Flows
// ----------------------------------------------------------------------------

func TestRouter_Health(t *testing.T) {
	s := newServer(t)
	expect(t, s.do(t, call{method: http.MethodGet, path: "/health"}), http.StatusOK)
	expect(t, s.do(t, call{method: http.MethodGet, path: "/health/ready"}), http.StatusOK)
}

func TestRouter_RequiresAuthentication(t *testing.T) {
	s := newServer(t)
	rec := s.do(t, call{method: http.MethodGet, path: "/api/news"})
	expect(t, rec, http.StatusUnauthorized)

	body := decode[errorInfo](t, rec)
	if body.URL == "" || body.Message == "" || body.Timestamp == "" {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestRouter_NewsLifecycle(t *testing.T) {
	s := newServer(t)
	admin := [2]string{"admin", "admin-pw"}

	// admin creates a journalist
	rec := s.do(t, call{method: http.MethodPost, path: "/api/user", basic: admin,
		body: map[string]any{"username": "journo", "password": "journo-pw", "roles": []string{"JOURNALIST"}}})
	expect(t, rec, http.StatusCreated)

	// journalist logs in and publishes
	rec = s.do(t, call{method: http.MethodPost, path: "/api/auth/login",
		body: map[string]string{"username": "journo", "password": "journo-pw"}})
	expect(t, rec, http.StatusOK)
	token := decode[struct {
		Token string `json:"token"`
	}](t, rec).Token

	rec = s.do(t, call{method: http.MethodPost, path: "/api/news", bearer: token,
		body: map[string]string{"title": "Hello", "text": "World"}})
	expect(t, rec, http.StatusCreated)
	newsID := decode[idBody](t, rec).ID

	// a subscriber registers, comments, but cannot publish
	expect(t, s.do(t, call{method: http.MethodPost, path: "/api/auth/register",
		body: map[string]string{"username": "reader", "password": "reader-pw"}}), http.StatusCreated)
	reader := [2]string{"reader", "reader-pw"}

	expect(t, s.do(t, call{method: http.MethodPost, path: "/api/news", basic: reader,
		body: map[string]string{"title": "x", "text": "y"}}), http.StatusForbidden)

	rec = s.do(t, call{method: http.MethodPost, path: "/api/comment", basic: reader,
		body: map[string]any{"text": "nice", "newsId": newsID}})
	expect(t, rec, http.StatusCreated)
	commentID := decode[idBody](t, rec).ID

	// the subscriber cannot edit the journalist's news
	expect(t, s.do(t, call{method: http.MethodPut, path: "/api/news/" + itoa(newsID), basic: reader,
		body: map[string]any{"id": newsID, "title": "hacked", "text": "y"}}), http.StatusForbidden)

	// nor reach the user admin
	expect(t, s.do(t, call{method: http.MethodGet, path: "/api/user", basic: reader}), http.StatusForbidden)

	// path and body ids must agree
	expect(t, s.do(t, call{method: http.MethodPut, path: "/api/news/" + itoa(newsID), bearer: token,
		body: map[string]any{"id": newsID + 1, "title": "t", "text": "x"}}), http.StatusBadRequest)

	// the news embeds the comment
	rec = s.do(t, call{method: http.MethodGet, path: "/api/news/" + itoa(newsID), basic: reader})
	expect(t, rec, http.StatusOK)
	detail := decode[struct {
		Comments []idBody `json:"comments"`
	}](t, rec)
	if len(detail.Comments) != 1 || detail.Comments[0].ID != commentID {
		t.Fatalf("unexpected comments: %+v", detail.Comments)
	}

	// deleting the news removes the comment
	expect(t, s.do(t, call{method: http.MethodDelete, path: "/api/news/" + itoa(newsID), bearer: token}), http.StatusOK)
	expect(t, s.do(t, call{method: http.MethodGet, path: "/api/comment/" + itoa(commentID), basic: reader}), http.StatusNotFound)
}

func TestRouter_CommentOnMissingNews(t *testing.T) {
	s := newServer(t)
	rec := s.do(t, call{method: http.MethodPost, path: "/api/comment", basic: [2]string{"admin", "admin-pw"},
		body: map[string]any{"text": "x", "newsId": 9999}})
	expect(t, rec, http.StatusNotFound)

	rec = s.do(t, call{method: http.MethodGet, path: "/api/comment", basic: [2]string{"admin", "admin-pw"}})
	expect(t, rec, http.StatusOK)
	list := decode[struct {
		Comments []idBody `json:"comments"`
	}](t, rec)
	if len(list.Comments) != 0 {
		t.Fatalf("expected no comments, got %+v", list.Comments)
	}
}

func TestRouter_HugePageIsMalformed(t *testing.T) {
	s := newServer(t)
	admin := [2]string{"admin", "admin-pw"}

	rec := s.do(t, call{method: http.MethodPost, path: "/api/news", basic: admin,
		body: map[string]string{"title": "t", "text": "x"}})
	expect(t, rec, http.StatusCreated)
	newsID := decode[idBody](t, rec).ID

	for _, path := range []string{
		"/api/news?page=9223372036854775807&size=2",
		"/api/news/" + itoa(newsID) + "?page=4611686018427387904&size=2",
		"/api/comment?page=9223372036854775807&size=50",
	} {
		rec := s.do(t, call{method: http.MethodGet, path: path, basic: admin})
		expect(t, rec, http.StatusBadRequest)
		if msg := decode[errorInfo](t, rec).Message; msg == "" {
			t.Fatalf("%s: expected an error message", path)
		}
	}
}

func TestRouter_OversizedBodyRejected(t *testing.T) {
	s := newServer(t)
	big := strings.Repeat("x", 1<<20)

	rec := s.do(t, call{method: http.MethodPost, path: "/api/auth/register",
		body: map[string]string{"username": "big", "password": big}})
	expect(t, rec, http.StatusRequestEntityTooLarge)

	req := httptest.NewRequest(http.MethodPost, "/api/news", bytes.NewReader(wire.AppendString(nil, 1, big)))
	req.Header.Set(echo.HeaderContentType, wire.ContentType)
	req.SetBasicAuth("admin", "admin-pw")
	rec = httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	expect(t, rec, http.StatusRequestEntityTooLarge)

	// Just under the cap still reaches the handler.
	rec = s.do(t, call{method: http.MethodPost, path: "/api/auth/register",
		body: map[string]string{"username": "small", "password": strings.Repeat("x", 1<<10)}})
	if rec.Code == http.StatusRequestEntityTooLarge {
		t.Fatalf("small body rejected as too large")
	}
}

func TestRouter_DuplicateRegistration(t *testing.T) {
	s := newServer(t)
	body := map[string]string{"username": "dup", "password": "dup-pw"}
	expect(t, s.do(t, call{method: http.MethodPost, path: "/api/auth/register", body: body}), http.StatusCreated)
	expect(t, s.do(t, call{method: http.MethodPost, path: "/api/auth/register", body: body}), http.StatusBadRequest)
}

func TestRouter_DefaultsToProtobuf(t *testing.T) {
	s := newServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.SetBasicAuth("admin", "admin-pw")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	expect(t, rec, http.StatusOK)
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/x-protobuf" {
		t.Fatalf("expected protobuf, got %q", ct)
	}
}

func itoa(v int64) string { return strconv.FormatInt(v, 10) }
