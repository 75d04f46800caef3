package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/newsroom/internal/api/metrics"
	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

// UserHandler serves /api/user.
type UserHandler struct {
	facade ports.UserFacade
}

func NewUserHandler(facade ports.UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// List handles GET /api/user.
//
// @Summary      List users
// @Tags         users
// @Produce      application/x-protobuf,json
// @Security     BearerAuth
// @Success      200  {object}  userSimpleDtoList
// @Failure      403  {object}  errorDoc
// @Router       /api/user [get]
func (h *UserHandler) List(c echo.Context) error {
	items, err := h.facade.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toUserSimpleDtoList(items))
}

// Get handles GET /api/user/:id.
//
// @Summary      Get a user with authored news and comments
// @Tags         users
// @Produce      application/x-protobuf,json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userDto
// @Failure      404  {object}  errorDoc
// @Router       /api/user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	detail, err := h.facade.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if detail == nil {
		return domain.UserNotFound(id)
	}
	return respond(c, http.StatusOK, toUserDto(detail))
}

// Create handles POST /api/user.
//
// @Summary      Create a user
// @Tags         users
// @Accept       application/x-protobuf,json
// @Produce      application/x-protobuf,json
// @Security     BearerAuth
// @Param        body  body      userSimpleDto  true  "User with password"
// @Success      201   {object}  userSimpleDto
// @Failure      400   {object}  errorDoc
// @Failure      403   {object}  errorDoc
// @Router       /api/user [post]
func (h *UserHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req userSimpleDto
	if err := bind(c, &req); err != nil {
		return err
	}
	in, err := toUserInput(&req)
	if err != nil {
		return err
	}

	created, err := h.facade.Save(c.Request().Context(), in, actor)
	if err != nil {
		return err
	}
	metrics.ContentCreatedTotal.WithLabelValues("user").Inc()

	out := toUserSimpleDto(*created)
	return respond(c, http.StatusCreated, &out)
}

// Update handles PUT /api/user/:id.
//
// @Summary      Edit a user
// @Description  An empty password keeps the stored one.
// @Tags         users
// @Accept       application/x-protobuf,json
// @Security     BearerAuth
// @Param        id    path  int            true  "User id"
// @Param        body  body  userSimpleDto  true  "User; id must match the path"
// @Success      200
// @Failure      400   {object}  errorDoc
// @Failure      403   {object}  errorDoc
// @Failure      404   {object}  errorDoc
// @Router       /api/user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req userSimpleDto
	if err := bind(c, &req); err != nil {
		return err
	}
	in, err := toUserInput(&req)
	if err != nil {
		return err
	}

	if err := h.facade.Update(c.Request().Context(), id, in, actor); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /api/user/:id.
//
// @Summary      Delete a user and everything they authored
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  int  true  "User id"
// @Success      200
// @Failure      403  {object}  errorDoc
// @Failure      404  {object}  errorDoc
// @Router       /api/user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
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
	metrics.ContentDeletedTotal.WithLabelValues("user").Inc()
	return c.NoContent(http.StatusOK)
}
