package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/newsroom/internal/api/metrics"
	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

type AuthHandler struct {
	facade ports.AuthFacade
}

func NewAuthHandler(facade ports.AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register creates a new SUBSCRIBER account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       application/x-protobuf,json
// @Produce      application/x-protobuf,json
// @Param        body  body      registrationRequestDto  true  "Username and password"
// @Success      201   {object}  userSimpleDto
// @Failure      400   {object}  errorDoc
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registrationRequestDto
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.facade.Register(c.Request().Context(), ports.RegistrationInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	metrics.RegistrationsTotal.Inc()

	out := toUserSimpleDto(*user)
	return respond(c, http.StatusCreated, &out)
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       application/x-protobuf,json
// @Produce      application/x-protobuf,json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorDoc
// @Failure      401   {object}  errorDoc
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, user, err := h.facade.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.AuthFailuresTotal.WithLabelValues("login").Inc()
		}
		return err
	}

	return respond(c, http.StatusOK, &loginResponse{Token: token, User: toUserSimpleDto(*user)})
}
