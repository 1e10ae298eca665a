package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/skywings/booking-system/internal/core/domain"
	"github.com/skywings/booking-system/internal/core/ports"
)

// FlightDirectory is the authoritative in-memory flight collection, mirrored
// wholesale to the snapshot store on every mutation.
type FlightDirectory struct {
	mu      sync.RWMutex
	flights []domain.Flight
	store   ports.SnapshotStore
	log     zerolog.Logger
}

// NewFlightDirectory loads the persisted collection, falling back to seed
// when the snapshot is missing or unparseable.
func NewFlightDirectory(ctx context.Context, store ports.SnapshotStore, seed []domain.Flight, log zerolog.Logger) *FlightDirectory {
	d := &FlightDirectory{store: store, log: log}
	var flights []domain.Flight
	if loadSnapshot(ctx, store, log, KeyFlights, &flights) {
		d.flights = flights
	} else {
		d.flights = append(d.flights, seed...)
	}
	return d
}

// Flights returns a copy of the collection in newest-first order.
func (d *FlightDirectory) Flights() []domain.Flight {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Flight, len(d.flights))
	copy(out, d.flights)
	return out
}

func (d *FlightDirectory) FlightByID(id int) (domain.Flight, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, f := range d.flights {
		if f.ID == id {
			return f, nil
		}
	}
	return domain.Flight{}, domain.ErrFlightNotFound
}

// Add assigns id = max(existing)+1 (1 when empty) and prepends the record so
// newest-first ordering holds for all consumers.
func (d *FlightDirectory) Add(ctx context.Context, in ports.FlightInput) domain.Flight {
	d.mu.Lock()
	defer d.mu.Unlock()

	maxID := 0
	for _, f := range d.flights {
		if f.ID > maxID {
			maxID = f.ID
		}
	}

	flight := domain.Flight{
		ID:           maxID + 1,
		Airline:      in.Airline,
		FlightNumber: in.FlightNumber,
		From:         in.From,
		To:           in.To,
		Departure:    in.Departure,
		Arrival:      in.Arrival,
		Duration:     in.Duration,
		Date:         in.Date,
		Price:        in.Price,
		Class:        in.Class,
		Stops:        in.Stops,
		Rating:       in.Rating,
		Status:       in.Status,
		Aircraft:     in.Aircraft,
		Capacity:     in.Capacity,
		Booked:       in.Booked,
	}

	d.flights = append([]domain.Flight{flight}, d.flights...)
	d.persistLocked(ctx)

	d.log.Info().Int("id", flight.ID).Str("flight_number", flight.FlightNumber).Msg("flight added")
	return flight
}

// Update merges the patch into the matching record. Unknown ids are a silent
// no-op.
func (d *FlightDirectory) Update(ctx context.Context, id int, patch ports.FlightPatch) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.flights {
		if d.flights[i].ID != id {
			continue
		}
		applyFlightPatch(&d.flights[i], patch)
		d.persistLocked(ctx)
		return
	}
}

// Remove filters out the matching id. Existing bookings keep their copied
// flight data; nothing cascades.
func (d *FlightDirectory) Remove(ctx context.Context, id int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.flights[:0]
	for _, f := range d.flights {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(d.flights) {
		return
	}
	d.flights = kept
	d.persistLocked(ctx)
}

// Stats aggregates over the current collection. Rate and average fields are
// 0 on an empty directory rather than NaN.
func (d *FlightDirectory) Stats() ports.FlightStats {
	d.mu.RLock()
	defer d.mu.RUnlock()

	stats := ports.FlightStats{TotalFlights: len(d.flights)}

	var ratingSum float64
	for _, f := range d.flights {
		stats.TotalRevenue += f.Price * float64(f.Booked)
		ratingSum += f.Rating
		if f.Status == domain.FlightActive || f.Status == domain.FlightScheduled {
			stats.ActiveFlights++
		}
	}

	if len(d.flights) > 0 {
		// On-time rate shares the Active|Scheduled numerator with
		// activeFlights on purpose; Delayed stays in the denominator.
		stats.OnTimeRate = float64(stats.ActiveFlights) / float64(len(d.flights)) * 100
		stats.AverageRating = ratingSum / float64(len(d.flights))
	}
	return stats
}

// persistLocked writes the full collection under the flights key. Held under
// the write lock so a later mutation can never be overwritten by an earlier
// snapshot.
func (d *FlightDirectory) persistLocked(ctx context.Context) {
	persistSnapshot(ctx, d.store, d.log, KeyFlights, d.flights)
}

func applyFlightPatch(f *domain.Flight, p ports.FlightPatch) {
	if p.Airline != nil {
		f.Airline = *p.Airline
	}
	if p.FlightNumber != nil {
		f.FlightNumber = *p.FlightNumber
	}
	if p.From != nil {
		f.From = *p.From
	}
	if p.To != nil {
		f.To = *p.To
	}
	if p.Departure != nil {
		f.Departure = *p.Departure
	}
	if p.Arrival != nil {
		f.Arrival = *p.Arrival
	}
	if p.Duration != nil {
		f.Duration = *p.Duration
	}
	if p.Date != nil {
		f.Date = *p.Date
	}
	if p.Price != nil {
		f.Price = *p.Price
	}
	if p.Class != nil {
		f.Class = *p.Class
	}
	if p.Stops != nil {
		f.Stops = *p.Stops
	}
	if p.Rating != nil {
		f.Rating = *p.Rating
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.Aircraft != nil {
		f.Aircraft = *p.Aircraft
	}
	if p.Capacity != nil {
		f.Capacity = *p.Capacity
	}
	if p.Booked != nil {
		f.Booked = *p.Booked
	}
}
