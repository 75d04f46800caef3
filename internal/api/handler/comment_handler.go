package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/newsroom/internal/api/metrics"
	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

// CommentHandler serves /api/comment.
type CommentHandler struct {
	facade      ports.CommentFacade
	maxPageSize int
}

func NewCommentHandler(facade ports.CommentFacade, maxPageSize int) *CommentHandler {
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}
	return &CommentHandler{facade: facade, maxPageSize: maxPageSize}
}

// List handles GET /api/comment.
//
// @Summary      List or search comments
// @Tags         comments
// @Produce      application/x-protobuf,json
// @Security     BearerAuth
// @Param        page      query     int     false  "0-based page index"
// @Param        size      query     int     false  "Page size"
// @Param        text      query     string  false  "Exact text"
// @Param        textLike  query     string  false  "Text substring"
// @Success      200       {object}  commentSimpleDtoList
// @Failure      400       {object}  errorDoc
// @Router       /api/comment [get]
func (h *CommentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	q := ports.CommentSearch{
		Text:         c.QueryParam("text"),
		TextContains: c.QueryParam("textLike"),
	}
	var (
		items []ports.CommentSummary
		err   error
	)
	if q != (ports.CommentSearch{}) {
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
	return respond(c, http.StatusOK, toCommentSimpleDtoList(items))
}

// Get handles GET /api/comment/:id.
//
// @Summary      Get a comment with its parent News
// @Tags         comments
// @Produce      application/x-protobuf,json
// @Security     BearerAuth
// @Param        id   path      int  true  "Comment id"
// @Success      200  {object}  commentDto
// @Failure      404  {object}  errorDoc
// @Router       /api/comment/{id} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	detail, err := h.facade.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if detail == nil {
		return domain.CommentNotFound(id)
	}
	return respond(c, http.StatusOK, toCommentDto(detail))
}

// Create handles POST /api/comment.
//
// @Summary      Comment on a News
// @Tags         comments
// @Accept       application/x-protobuf,json
// @Produce      application/x-protobuf,json
// @Security     BearerAuth
// @Param        body  body      commentSimpleDto  true  "Comment"
// @Success      201   {object}  commentSimpleDto
// @Failure      400   {object}  errorDoc
// @Failure      404   {object}  errorDoc
// @Router       /api/comment [post]
func (h *CommentHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req commentSimpleDto
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.NewsID <= 0 {
		return fmt.Errorf("%w: newsId is required", domain.ErrBadRequestParameters)
	}

	created, err := h.facade.Save(c.Request().Context(), toCommentInput(&req), actor)
	if err != nil {
		return err
	}
	metrics.ContentCreatedTotal.WithLabelValues("comment").Inc()

	out := toCommentSimpleDto(*created)
	return respond(c, http.StatusCreated, &out)
}

// Update handles PUT /api/comment/:id.
//
// @Summary      Edit a comment
// @Tags         comments
// @Accept       application/x-protobuf,json
// @Security     BearerAuth
// @Param        id    path  int               true  "Comment id"
// @Param        body  body  commentSimpleDto  true  "Comment; id must match the path"
// @Success      200
// @Failure      400   {object}  errorDoc
// @Failure      403   {object}  errorDoc
// @Failure      404   {object}  errorDoc
// @Router       /api/comment/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req commentSimpleDto
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.facade.Update(c.Request().Context(), id, toCommentInput(&req), actor); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /api/comment/:id.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id  path  int  true  "Comment id"
// @Success      200
// @Failure      403  {object}  errorDoc
// @Failure      404  {object}  errorDoc
// @Router       /api/comment/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
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
	metrics.ContentDeletedTotal.WithLabelValues("comment").Inc()
	return c.NoContent(http.StatusOK)
}
