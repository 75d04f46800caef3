package handler

import (
	"bytes"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/newsroom/internal/api/middleware"
	"github.com/newsdesk/newsroom/internal/api/wire"
	"github.com/newsdesk/newsroom/internal/core/domain"
)

// ----------------------------------------------------------------------------
// Request helpers
// ----------------------------------------------------------------------------

var (
	admin      = &domain.User{ID: 1, Username: "admin", Active: true, Roles: domain.NewRoles(domain.RoleAdmin)}
	journalist = &domain.User{ID: 2, Username: "journo", Active: true, Roles: domain.NewRoles(domain.RoleJournalist)}
)

type request struct {
	method string
	target string
	body   []byte
	json   bool // send JSON and ask for JSON back
	actor  *domain.User
	params map[string]string
}

func newContext(r request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req := httptest.NewRequest(r.method, r.target, body)
	if r.json {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	} else if r.body != nil {
		req.Header.Set(echo.HeaderContentType, wire.ContentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(r.params))
	values := make([]string, 0, len(r.params))
	for k, v := range r.params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if r.actor != nil {
		c.Set(middleware.ActorKey, r.actor)
	}
	return c, rec
}

func id(v string) map[string]string { return map[string]string{"id": v} }

// decodeFields collects the top-level fields of a protobuf message by number.
func decodeFields(b []byte) (map[int][]wire.Field, error) {
	out := make(map[int][]wire.Field)
	err := wire.Range(b, func(f wire.Field) error {
		out[int(f.Num)] = append(out[int(f.Num)], f)
		return nil
	})
	return out, err
}
