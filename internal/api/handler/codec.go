package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/newsroom/internal/api/wire"
	"github.com/newsdesk/newsroom/internal/core/domain"
)

// message is a response body that can be rendered as JSON or protobuf.
type message interface {
	wire.Marshaler
}

// bind decodes the request body by Content-Type and validates it. JSON is
// used when the client says so; anything else is read as protobuf. Body size
// is capped by the router's BodyLimit middleware for both formats.
func bind(c echo.Context, req wire.Unmarshaler) error {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ct, echo.MIMEApplicationJSON) {
		if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
			if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
				return echo.ErrStatusRequestEntityTooLarge
			}
			return fmt.Errorf("%w: invalid payload", domain.ErrBadRequestParameters)
		}
	} else {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
				return echo.ErrStatusRequestEntityTooLarge
			}
			return fmt.Errorf("%w: unreadable payload", domain.ErrBadRequestParameters)
		}
		if err := req.UnmarshalProto(body); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrBadRequestParameters, err)
		}
	}
	if err := c.Validate(req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadRequestParameters, err)
	}
	return nil
}

// respond writes body as JSON when the client accepts JSON, protobuf otherwise.
func respond(c echo.Context, status int, body message) error {
	if wantsJSON(c.Request()) {
		return c.JSON(status, body)
	}
	return c.Blob(status, wire.ContentType, body.MarshalProto())
}

func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, wire.ContentType)
}
