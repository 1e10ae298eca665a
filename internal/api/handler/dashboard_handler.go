package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skywings/booking-system/internal/core/ports"
	"github.com/skywings/booking-system/internal/core/views"
)

const defaultRecentN = 3

// DashboardHandler serves the composite dashboard view.
type DashboardHandler struct {
	flights  ports.FlightService
	bookings ports.BookingService
	users    ports.UserService
}

func NewDashboardHandler(flights ports.FlightService, bookings ports.BookingService, users ports.UserService) *DashboardHandler {
	return &DashboardHandler{flights: flights, bookings: bookings, users: users}
}

// Get handles GET /v1/dashboard. Everything is recomputed from the latest
// state on every call; nothing is cached.
//
// @Summary      Composite dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        recent  query  int  false  "Recent-activity slice size"
// @Success      200     {object}  views.Dashboard
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	recentN := defaultRecentN
	if raw := c.QueryParam("recent"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			recentN = n
		}
	}

	users, _ := h.users.Users()
	dashboard := views.BuildDashboard(
		h.flights.Stats(),
		users,
		h.bookings.Upcoming(),
		h.bookings.Past(),
		h.bookings.Cancelled(),
		h.bookings.Bookings(),
		recentN,
	)
	return c.JSON(http.StatusOK, dashboard)
}
