package handler

import "github.com/skywings/booking-system/internal/core/domain"

type createBookingRequest struct {
	FlightID  int    `json:"flightId"  validate:"required"`
	Passenger string `json:"passenger" validate:"required"`
	Seat      string `json:"seat"      validate:"required"`
	Class     string `json:"class"     validate:"omitempty,oneof=Economy Business 'First Class'"`
}

type setBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type listBookingsResponse struct {
	Items []domain.Booking `json:"items"`
	Total int              `json:"total"`
}

type reconcileResponse struct {
	Completed int `json:"completed"`
}
