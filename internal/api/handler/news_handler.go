package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/newsroom/internal/api/metrics"
	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

// NewsHandler serves /api/news.
type NewsHandler struct {
	facade      ports.NewsFacade
	maxPageSize int
}

func NewNewsHandler(facade ports.NewsFacade, maxPageSize int) *NewsHandler {
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}
	return &NewsHandler{facade: facade, maxPageSize: maxPageSize}
}

// List handles GET /api/news.
//
// @Summary      List or search news
// @Description  Without parameters every News is returned, oldest first. page and size select one page.
// @Description  text, textLike, title and titleLike search instead; the first one present wins.
// @Tags         news
// @Produce      application/x-protobuf,json
// @Security     BearerAuth
// @Param        page       query     int     false  "0-based page index"
// @Param        size       query     int     false  "Page size"
// @Param        text       query     string  false  "Exact text"
// @Param        textLike   query     string  false  "Text substring"
// @Param        title      query     string  false  "Exact title"
// @Param        titleLike  query     string  false  "Title substring"
// @Success      200        {object}  newsSimpleDtoList
// @Failure      400        {object}  errorDoc
// @Failure      401        {object}  errorDoc
// @Router       /api/news [get]
func (h *NewsHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	q := ports.NewsSearch{
		Text:          c.QueryParam("text"),
		TextContains:  c.QueryParam("textLike"),
		Title:         c.QueryParam("title"),
		TitleContains: c.QueryParam("titleLike"),
	}
	var (
		items []ports.NewsSummary
		err   error
	)
	if q != (ports.NewsSearch{}) {
		items, err = h.facade.Search(ctx, q)
	} else {
		page, paged, perr := pageQuery(c, h.maxPageSize)
		if perr != nil {
			return perr
		}
		if paged {
			items, err = h.facade.FindPage(ctx, page)
		} else {
			items, err = h.facade.FindAll(ctx)
		}
	}
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toNewsSimpleDtoList(items))
}

// Get handles GET /api/news/:id.
//
// @Summary      Get a News with its comments
// @Description  page and size page the embedded comments only.
// @Tags         news
// @Produce      application/x-protobuf,json
// @Security     BearerAuth
// @Param        id    path      int  true   "News id"
// @Param        page  query     int  false  "0-based comment page index"
// @Param        size  query     int  false  "Comment page size"
// @Success      200   {object}  newsDto
// @Failure      400   {object}  errorDoc
// @Failure      404   {object}  errorDoc
// @Router       /api/news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	page, paged, err := pageQuery(c, h.maxPageSize)
	if err != nil {
		return err
	}

	var detail *ports.NewsDetail
	if paged {
		detail, err = h.facade.FindByIDWithCommentPage(c.Request().Context(), id, page)
	} else {
		detail, err = h.facade.FindByID(c.Request().Context(), id)
	}
	if err != nil {
		return err
	}
	if detail == nil {
		return domain.NewsNotFound(id)
	}
	return respond(c, http.StatusOK, toNewsDto(detail))
}

// Create handles POST /api/news.
//
// @Summary      Publish a News
// @Description  The owner is the authenticated user and the date is assigned by the server.
// @Tags         news
// @Accept       application/x-protobuf,json
// @Produce      application/x-protobuf,json
// @Security     BearerAuth
// @Param        body  body      newsSimpleDto  true  "News"
// @Success      201   {object}  newsSimpleDto
// @Failure      400   {object}  errorDoc
// @Failure      403   {object}  errorDoc
// @Router       /api/news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req newsSimpleDto
	if err := bind(c, &req); err != nil {
		return err
	}

	created, err := h.facade.Save(c.Request().Context(), toNewsInput(&req), actor)
	if err != nil {
		return err
	}
	metrics.ContentCreatedTotal.WithLabelValues("news").Inc()

	out := toNewsSimpleDto(*created)
	return respond(c, http.StatusCreated, &out)
}

// Update handles PUT /api/news/:id.
//
// @Summary      Edit a News
// @Tags         news
// @Accept       application/x-protobuf,json
// @Security     BearerAuth
// @Param        id    path  int            true  "News id"
// @Param        body  body  newsSimpleDto  true  "News; id must match the path"
// @Success      200
// @Failure      400   {object}  errorDoc
// @Failure      403   {object}  errorDoc
// @Failure      404   {object}  errorDoc
// @Router       /api/news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req newsSimpleDto
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.facade.Update(c.Request().Context(), id, toNewsInput(&req), actor); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /api/news/:id.
//
// @Summary      Delete a News and its comments
// @Tags         news
// @Security     BearerAuth
// @Param        id  path  int  true  "News id"
// @Success      200
// @Failure      403  {object}  errorDoc
// @Failure      404  {object}  errorDoc
// @Router       /api/news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.facade.DeleteByID(c.Request().Context(), id, actor); err != nil {
		return err
	}
	metrics.ContentDeletedTotal.WithLabelValues("news").Inc()
	return c.NoContent(http.StatusOK)
}

// errorDoc documents the error envelope for the API docs.
type errorDoc struct {
	URL       string `json:"url"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
