package domain

// FlightStatus represents the operational state of a flight.
type FlightStatus string

const (
	FlightActive    FlightStatus = "Active"
	FlightDelayed   FlightStatus = "Delayed"
	FlightCancelled FlightStatus = "Cancelled"
	FlightScheduled FlightStatus = "Scheduled"
)

// FareClass is the cabin class sold for a flight or booking.
type FareClass string

const (
	ClassEconomy  FareClass = "Economy"
	ClassBusiness FareClass = "Business"
	ClassFirst    FareClass = "First Class"
)

// Flight is one schedulable flight instance. Display fields (departure,
// arrival, duration, date) are kept as the free-text strings the inventory
// was entered with; derived views parse them on demand.
//
// Booked ≤ Capacity is intended but not enforced here — the directory stores
// whatever the admin surface hands it.
type Flight struct {
	ID           int          `json:"id" bson:"_id"`
	Airline      string       `json:"airline" bson:"airline"`
	FlightNumber string       `json:"flightNumber" bson:"flight_number"`
	From         string       `json:"from" bson:"from"`
	To           string       `json:"to" bson:"to"`
	Departure    string       `json:"departure" bson:"departure"`
	Arrival      string       `json:"arrival" bson:"arrival"`
	Duration     string       `json:"duration" bson:"duration"`
	Date         string       `json:"date" bson:"date"`
	Price        float64      `json:"price" bson:"price"`
	Class        FareClass    `json:"class" bson:"class"`
	Stops        string       `json:"stops" bson:"stops"`
	Rating       float64      `json:"rating" bson:"rating"`
	Status       FlightStatus `json:"status" bson:"status"`
	Aircraft     string       `json:"aircraft" bson:"aircraft"`
	Capacity     int          `json:"capacity" bson:"capacity"`
	Booked       int          `json:"booked" bson:"booked"`
}
