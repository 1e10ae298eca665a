package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skywings/booking-system/internal/api/metrics"
	"github.com/skywings/booking-system/internal/core/domain"
	"github.com/skywings/booking-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for the booking ledger.
type BookingHandler struct {
	bookings ports.BookingService
	flights  ports.FlightService
}

func NewBookingHandler(bookings ports.BookingService, flights ports.FlightService) *BookingHandler {
	return &BookingHandler{bookings: bookings, flights: flights}
}

// List handles GET /v1/bookings?view=upcoming|past|cancelled|all.
//
// @Summary      List bookings by category
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        view  query  string  false  "Category"  Enums(upcoming, past, cancelled, all)
// @Success      200   {object}  listBookingsResponse
// @Router       /v1/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	var items []domain.Booking
	switch c.QueryParam("view") {
	case "upcoming":
		items = h.bookings.Upcoming()
	case "past":
		items = h.bookings.Past()
	case "cancelled":
		items = h.bookings.Cancelled()
	default:
		items = h.bookings.Bookings()
	}
	return c.JSON(http.StatusOK, listBookingsResponse{Items: items, Total: len(items)})
}

// Create handles POST /v1/bookings. Flight fields are copied by value into
// the booking; later flight edits do not propagate.
//
// @Summary      Book a flight
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	flight, err := h.flights.FlightByID(req.FlightID)
	if err != nil {
		return err
	}

	class := flight.Class
	if req.Class != "" {
		class = domain.FareClass(req.Class)
	}

	fromCity, fromCode := splitCityCode(flight.From)
	toCity, toCode := splitCityCode(flight.To)

	booking := h.bookings.Create(c.Request().Context(), ports.BookingInput{
		FlightNumber: flight.FlightNumber,
		Airline:      flight.Airline,
		From:         fromCity,
		FromCode:     fromCode,
		To:           toCity,
		ToCode:       toCode,
		Date:         flight.Date,
		Time:         flight.Departure,
		Arrival:      flight.Arrival,
		Duration:     flight.Duration,
		Passenger:    req.Passenger,
		Seat:         req.Seat,
		Class:        class,
		Price:        flight.Price,
	})

	metrics.BookingsCreatedTotal.WithLabelValues(string(booking.Class)).Inc()
	return c.JSON(http.StatusCreated, booking)
}

// Cancel handles POST /v1/bookings/:id/cancel. The record is retained with
// status Cancelled; unknown ids are a silent no-op.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking id (e.g. BK-2451)"
// @Success      204
// @Router       /v1/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	h.bookings.Cancel(c.Request().Context(), c.Param("id"))
	metrics.BookingsCancelledTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// SetStatus handles POST /v1/bookings/:id/status — used by the
// "complete payment" flow (Pending → Confirmed). No transition guard is
// applied beyond checking the status is a known one.
//
// @Summary      Overwrite a booking's status
// @Tags         bookings
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string                   true  "Booking id"
// @Param        body  body  setBookingStatusRequest  true  "New status"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/bookings/{id}/status [post]
func (h *BookingHandler) SetStatus(c echo.Context) error {
	var req setBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	status := domain.BookingStatus(req.Status)
	if !domain.ValidBookingStatus(status) {
		return domain.ErrInvalidStatus
	}

	h.bookings.SetStatus(c.Request().Context(), c.Param("id"), status)
	return c.NoContent(http.StatusNoContent)
}

// Reconcile handles POST /v1/bookings/reconcile — materializes Completed for
// Confirmed bookings whose date has elapsed.
//
// @Summary      Materialize Completed bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  reconcileResponse
// @Router       /v1/bookings/reconcile [post]
func (h *BookingHandler) Reconcile(c echo.Context) error {
	n := h.bookings.ReconcileCompleted(c.Request().Context())
	metrics.BookingsReconciledTotal.Add(float64(n))
	return c.JSON(http.StatusOK, reconcileResponse{Completed: n})
}

var cityCodePattern = regexp.MustCompile(`^(.*?)\s*\(([A-Z0-9]+)\)\s*$`)

// splitCityCode splits the "City (CODE)" display form used by the flight
// directory. Strings without a code come back with an empty code.
func splitCityCode(s string) (city, code string) {
	if m := cityCodePattern.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1]), m[2]
	}
	return strings.TrimSpace(s), ""
}
