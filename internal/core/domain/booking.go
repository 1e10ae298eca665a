package domain

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingPending   BookingStatus = "Pending"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

// ValidBookingStatus reports whether s is one of the known booking statuses.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingConfirmed, BookingPending, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking is one reservation of a seat on a flight for a named passenger.
// Flight fields are copied by value at creation time; a later flight update
// does not propagate to existing bookings.
type Booking struct {
	ID           string        `json:"id"`
	FlightNumber string        `json:"flightNumber"`
	Airline      string        `json:"airline"`
	From         string        `json:"from"`
	FromCode     string        `json:"fromCode"`
	To           string        `json:"to"`
	ToCode       string        `json:"toCode"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Arrival      string        `json:"arrival"`
	Duration     string        `json:"duration"`
	Passenger    string        `json:"passenger"`
	Seat         string        `json:"seat"`
	Class        FareClass     `json:"class"`
	Price        float64       `json:"price"`
	Status       BookingStatus `json:"status"`
	BookingDate  string        `json:"bookingDate"`
}
