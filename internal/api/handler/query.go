package handler

import (
	"fmt"
	"math"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

// DefaultMaxPageSize caps the size query parameter when none is configured.
const DefaultMaxPageSize = 100

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id must be a positive integer, got %q", domain.ErrMalformedQueryParameter, c.Param("id"))
	}
	return id, nil
}

// pageQuery reads page and size. Both must be present to page; ok is false
// when neither is.
func pageQuery(c echo.Context, maxSize int) (page ports.Page, ok bool, err error) {
	rawPage, rawSize := c.QueryParam("page"), c.QueryParam("size")
	if rawPage == "" && rawSize == "" {
		return ports.Page{}, false, nil
	}
	if rawPage == "" || rawSize == "" {
		return ports.Page{}, false, fmt.Errorf("%w: page and size must be given together", domain.ErrMalformedQueryParameter)
	}

	number, err := strconv.Atoi(rawPage)
	if err != nil || number < 0 {
		return ports.Page{}, false, fmt.Errorf("%w: page must be a non-negative integer, got %q", domain.ErrMalformedQueryParameter, rawPage)
	}
	size, err := strconv.Atoi(rawSize)
	if err != nil || size < 1 || size > maxSize {
		return ports.Page{}, false, fmt.Errorf("%w: size must be between 1 and %d, got %q", domain.ErrMalformedQueryParameter, maxSize, rawSize)
	}
	if number > math.MaxInt/size {
		return ports.Page{}, false, fmt.Errorf("%w: page %d is out of range for size %d", domain.ErrMalformedQueryParameter, number, size)
	}
	return ports.Page{Number: number, Size: size}, true, nil
}
