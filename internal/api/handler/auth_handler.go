package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skywings/booking-system/internal/core/domain"
	"github.com/skywings/booking-system/internal/core/ports"
)

// AuthHandler handles registration, login and mock sessions.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required,min=6"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"        validate:"omitempty,oneof=User Admin"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type mockSessionRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	Role        string `json:"role"        validate:"required,oneof=User Admin"`
	DisplayName string `json:"displayName"`
}

type authResponse struct {
	Token     string           `json:"token,omitempty"`
	Principal domain.Principal `json:"principal"`
}

// Register creates a credential and returns a signed token.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.auth.Register(c.Request().Context(), req.Email, req.Password, req.DisplayName, domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, authResponse{Token: result.Token, Principal: result.Principal})
}

// Login verifies credentials and returns a signed token with the resolved
// role.
//
// @Summary      Sign in with credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Token: result.Token, Principal: result.Principal})
}

// CreateMockSession fabricates a principal for environments without a real
// identity provider.
//
// @Summary      Create a mock session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      mockSessionRequest  true  "Mock principal"
// @Success      201   {object}  authResponse
// @Router       /auth/mock-session [post]
func (h *AuthHandler) CreateMockSession(c echo.Context) error {
	var req mockSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	principal := h.auth.CreateMockSession(c.Request().Context(), req.Email, domain.Role(req.Role), req.DisplayName)
	return c.JSON(http.StatusCreated, authResponse{Principal: principal})
}

// Session returns the stored mock principal, if any.
//
// @Summary      Get the current mock session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      404  {object}  errorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	principal, err := h.auth.MockSession(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Principal: principal})
}

// ClearSession removes the stored mock principal.
//
// @Summary      Clear the mock session
// @Tags         auth
// @Success      204
// @Router       /auth/session [delete]
func (h *AuthHandler) ClearSession(c echo.Context) error {
	h.auth.ClearMockSession(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}
