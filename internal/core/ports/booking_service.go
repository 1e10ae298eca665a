package ports

import (
	"context"

	"github.com/skywings/booking-system/internal/core/domain"
)

// BookingInput carries the data for a new booking. Flight fields are copied
// by value from the flight being booked; id, bookingDate and status are
// assigned by the ledger (status is always forced to Confirmed).
type BookingInput struct {
	FlightNumber string
	Airline      string
	From         string
	FromCode     string
	To           string
	ToCode       string
	Date         string
	Time         string
	Arrival      string
	Duration     string
	Passenger    string
	Seat         string
	Class        domain.FareClass
	Price        float64
}

// BookingService is the authoritative in-memory booking ledger. Records are
// never hard-deleted; cancellation is a status flip.
type BookingService interface {
	Bookings() []domain.Booking
	Create(ctx context.Context, in BookingInput) domain.Booking
	Cancel(ctx context.Context, id string)
	SetStatus(ctx context.Context, id string, status domain.BookingStatus)

	// Upcoming returns Confirmed or Pending bookings dated today or later.
	Upcoming() []domain.Booking
	// Past returns Completed bookings plus Confirmed bookings whose date has
	// elapsed.
	Past() []domain.Booking
	Cancelled() []domain.Booking

	// ReconcileCompleted flips Confirmed bookings with an elapsed date to
	// Completed and reports how many records changed.
	ReconcileCompleted(ctx context.Context) int
}
