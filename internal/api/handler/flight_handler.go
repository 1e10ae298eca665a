package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skywings/booking-system/internal/api/metrics"
	"github.com/skywings/booking-system/internal/core/domain"
	"github.com/skywings/booking-system/internal/core/ports"
	"github.com/skywings/booking-system/internal/core/views"
)

// FlightHandler handles HTTP requests for the flight directory.
type FlightHandler struct {
	flights ports.FlightService
}

func NewFlightHandler(flights ports.FlightService) *FlightHandler {
	return &FlightHandler{flights: flights}
}

// List handles GET /v1/flights with optional search/filter/sort.
//
// @Summary      Search and list flights
// @Tags         flights
// @Produce      json
// @Param        q      query  string  false  "Substring match over from/to/airline/flight number"
// @Param        class  query  string  false  "Fare class filter"  Enums(all, economy, business, first)
// @Param        sort   query  string  false  "Sort key"           Enums(price, rating, duration, departure)
// @Success      200    {object}  listFlightsResponse
// @Router       /v1/flights [get]
func (h *FlightHandler) List(c echo.Context) error {
	results := views.ApplyFlightQuery(h.flights.Flights(), views.FlightQuery{
		Search: c.QueryParam("q"),
		Class:  c.QueryParam("class"),
		SortBy: c.QueryParam("sort"),
	})
	return c.JSON(http.StatusOK, listFlightsResponse{Items: results, Total: len(results)})
}

// Create handles POST /v1/flights.
//
// @Summary      Add a flight to the inventory
// @Tags         flights
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFlightRequest  true  "Flight details"
// @Success      201   {object}  domain.Flight
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/flights [post]
func (h *FlightHandler) Create(c echo.Context) error {
	var req createFlightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	flight := h.flights.Add(c.Request().Context(), ports.FlightInput{
		Airline:      req.Airline,
		FlightNumber: req.FlightNumber,
		From:         req.From,
		To:           req.To,
		Departure:    req.Departure,
		Arrival:      req.Arrival,
		Duration:     req.Duration,
		Date:         req.Date,
		Price:        req.Price,
		Class:        domain.FareClass(req.Class),
		Stops:        req.Stops,
		Rating:       req.Rating,
		Status:       domain.FlightStatus(req.Status),
		Aircraft:     req.Aircraft,
		Capacity:     req.Capacity,
		Booked:       req.Booked,
	})

	metrics.FlightsMutatedTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusCreated, flight)
}

// Update handles PATCH /v1/flights/:id. Unknown ids are a no-op and still
// return 204, matching the directory's silent-no-op contract.
//
// @Summary      Partially update a flight
// @Tags         flights
// @Accept       json
// @Security     BearerAuth
// @Param        id    path   int                  true  "Flight id"
// @Param        body  body   updateFlightRequest  true  "Fields to change"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/flights/{id} [patch]
func (h *FlightHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid flight id")
	}

	var req updateFlightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.flights.Update(c.Request().Context(), id, toFlightPatch(req))
	metrics.FlightsMutatedTotal.WithLabelValues("update").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/flights/:id. Existing bookings keep their copied
// flight data.
//
// @Summary      Remove a flight from the inventory
// @Tags         flights
// @Security     BearerAuth
// @Param        id  path  int  true  "Flight id"
// @Success      204
// @Router       /v1/flights/{id} [delete]
func (h *FlightHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid flight id")
	}
	h.flights.Remove(c.Request().Context(), id)
	metrics.FlightsMutatedTotal.WithLabelValues("remove").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /v1/flights/stats.
//
// @Summary      Aggregate flight statistics
// @Tags         flights
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.FlightStats
// @Router       /v1/flights/stats [get]
func (h *FlightHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.flights.Stats())
}

func toFlightPatch(req updateFlightRequest) ports.FlightPatch {
	p := ports.FlightPatch{
		Airline:      req.Airline,
		FlightNumber: req.FlightNumber,
		From:         req.From,
		To:           req.To,
		Departure:    req.Departure,
		Arrival:      req.Arrival,
		Duration:     req.Duration,
		Date:         req.Date,
		Price:        req.Price,
		Stops:        req.Stops,
		Rating:       req.Rating,
		Aircraft:     req.Aircraft,
		Capacity:     req.Capacity,
		Booked:       req.Booked,
	}
	if req.Class != nil {
		class := domain.FareClass(*req.Class)
		p.Class = &class
	}
	if req.Status != nil {
		status := domain.FlightStatus(*req.Status)
		p.Status = &status
	}
	return p
}
