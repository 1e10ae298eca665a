package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skywings/booking-system/internal/core/domain"
	"github.com/skywings/booking-system/internal/core/ports"
)

// UserHandler handles HTTP requests for the user directory.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /v1/users. The source field reports whether the list came
// from the remote directory or local state.
//
// @Summary      List user directory entries
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, source := h.users.Users()
	return c.JSON(http.StatusOK, listUsersResponse{Items: users, Total: len(users), Source: string(source)})
}

// Create handles POST /v1/users. The role mapping for the new user's email
// is recorded synchronously; the remote write happens in the background.
//
// @Summary      Add a user directory entry
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user := h.users.Add(c.Request().Context(), ports.UserInput{
		Name:          req.Name,
		Email:         req.Email,
		Role:          domain.Role(req.Role),
		MemberSince:   req.MemberSince,
		TotalFlights:  req.TotalFlights,
		LoyaltyPoints: req.LoyaltyPoints,
		Status:        domain.UserStatus(req.Status),
		LastLogin:     req.LastLogin,
	})
	return c.JSON(http.StatusCreated, user)
}

// Update handles PATCH /v1/users/:id. Unknown ids are a no-op and still
// return 204.
//
// @Summary      Partially update a user directory entry
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string             true  "User id (e.g. USR-001)"
// @Param        body  body  updateUserRequest  true  "Fields to change"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	patch := ports.UserPatch{
		Name:          req.Name,
		Email:         req.Email,
		MemberSince:   req.MemberSince,
		TotalFlights:  req.TotalFlights,
		LoyaltyPoints: req.LoyaltyPoints,
		LastLogin:     req.LastLogin,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		patch.Role = &role
	}
	if req.Status != nil {
		status := domain.UserStatus(*req.Status)
		patch.Status = &status
	}

	h.users.Update(c.Request().Context(), c.Param("id"), patch)
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/users/:id. The deleted user's role mapping is
// reset to User rather than removed.
//
// @Summary      Delete a user directory entry
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	h.users.Delete(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// Reload handles POST /v1/users/reload — refetches the remote directory,
// degrading to local state on any failure.
//
// @Summary      Reload users from the remote directory
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  reloadUsersResponse
// @Router       /v1/users/reload [post]
func (h *UserHandler) Reload(c echo.Context) error {
	source := h.users.Reload(c.Request().Context())
	return c.JSON(http.StatusOK, reloadUsersResponse{Source: string(source)})
}
