package handler

import "github.com/skywings/booking-system/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createFlightRequest struct {
	Airline      string  `json:"airline"      validate:"required"`
	FlightNumber string  `json:"flightNumber" validate:"required"`
	From         string  `json:"from"         validate:"required"`
	To           string  `json:"to"           validate:"required"`
	Departure    string  `json:"departure"    validate:"required"`
	Arrival      string  `json:"arrival"      validate:"required"`
	Duration     string  `json:"duration"`
	Date         string  `json:"date"         validate:"required"`
	Price        float64 `json:"price"        validate:"gt=0"`
	Class        string  `json:"class"        validate:"required,oneof=Economy Business 'First Class'"`
	Stops        string  `json:"stops"`
	Rating       float64 `json:"rating"       validate:"gte=0,lte=5"`
	Status       string  `json:"status"       validate:"required,oneof=Active Delayed Cancelled Scheduled"`
	Aircraft     string  `json:"aircraft"`
	Capacity     int     `json:"capacity"     validate:"gte=0"`
	Booked       int     `json:"booked"       validate:"gte=0"`
}

// updateFlightRequest is a partial update; absent fields leave the record
// untouched.
type updateFlightRequest struct {
	Airline      *string  `json:"airline"`
	FlightNumber *string  `json:"flightNumber"`
	From         *string  `json:"from"`
	To           *string  `json:"to"`
	Departure    *string  `json:"departure"`
	Arrival      *string  `json:"arrival"`
	Duration     *string  `json:"duration"`
	Date         *string  `json:"date"`
	Price        *float64 `json:"price"        validate:"omitempty,gt=0"`
	Class        *string  `json:"class"        validate:"omitempty,oneof=Economy Business 'First Class'"`
	Stops        *string  `json:"stops"`
	Rating       *float64 `json:"rating"       validate:"omitempty,gte=0,lte=5"`
	Status       *string  `json:"status"       validate:"omitempty,oneof=Active Delayed Cancelled Scheduled"`
	Aircraft     *string  `json:"aircraft"`
	Capacity     *int     `json:"capacity"     validate:"omitempty,gte=0"`
	Booked       *int     `json:"booked"       validate:"omitempty,gte=0"`
}

type listFlightsResponse struct {
	Items []domain.Flight `json:"items"`
	Total int             `json:"total"`
}
