package ports

import (
	"context"

	"github.com/skywings/booking-system/internal/core/domain"
)

// FlightInput carries all data needed to add a flight. The directory assigns
// the id itself (max existing + 1).
type FlightInput struct {
	Airline      string
	FlightNumber string
	From         string
	To           string
	Departure    string
	Arrival      string
	Duration     string
	Date         string
	Price        float64
	Class        domain.FareClass
	Stops        string
	Rating       float64
	Status       domain.FlightStatus
	Aircraft     string
	Capacity     int
	Booked       int
}

// FlightPatch is a partial update: nil fields are left untouched. An empty
// patch is a no-op on the record's values.
type FlightPatch struct {
	Airline      *string
	FlightNumber *string
	From         *string
	To           *string
	Departure    *string
	Arrival      *string
	Duration     *string
	Date         *string
	Price        *float64
	Class        *domain.FareClass
	Stops        *string
	Rating       *float64
	Status       *domain.FlightStatus
	Aircraft     *string
	Capacity     *int
	Booked       *int
}

// FlightStats are the aggregates computed over the flight directory.
// TotalUsers is deliberately absent: it belongs to the user directory and is
// combined in by the dashboard view.
type FlightStats struct {
	TotalFlights  int     `json:"totalFlights"`
	ActiveFlights int     `json:"activeFlights"`
	TotalRevenue  float64 `json:"totalRevenue"`
	OnTimeRate    float64 `json:"onTimeRate"`
	AverageRating float64 `json:"averageRating"`
}

// FlightService is the authoritative in-memory flight directory. Mutations
// apply synchronously and persist the full collection; unknown ids are
// silent no-ops.
type FlightService interface {
	Flights() []domain.Flight
	FlightByID(id int) (domain.Flight, error)
	Add(ctx context.Context, in FlightInput) domain.Flight
	Update(ctx context.Context, id int, patch FlightPatch)
	Remove(ctx context.Context, id int)
	Stats() FlightStats
}
