package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/skywings/booking-system/internal/core/domain"
	"github.com/skywings/booking-system/internal/core/ports"
)

const isoDate = "2006-01-02"

// bookingDateLayouts are the formats tried when interpreting a booking's
// travel date, in order. Dates that match none of them are treated as epoch,
// which classifies them as maximally past instead of erroring.
var bookingDateLayouts = []string{
	isoDate,
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC3339,
	"01/02/2006",
}

// BookingLedger is the authoritative in-memory booking collection, mirrored
// wholesale to the snapshot store on every mutation. Records are never hard
// deleted.
type BookingLedger struct {
	mu       sync.RWMutex
	bookings []domain.Booking
	store    ports.SnapshotStore
	log      zerolog.Logger
	now      func() time.Time // injectable for tests
}

// NewBookingLedger loads the persisted ledger, falling back to seed when the
// snapshot is missing or unparseable.
func NewBookingLedger(ctx context.Context, store ports.SnapshotStore, seed []domain.Booking, log zerolog.Logger) *BookingLedger {
	l := &BookingLedger{store: store, log: log, now: time.Now}
	var bookings []domain.Booking
	if loadSnapshot(ctx, store, log, KeyBookings, &bookings) {
		l.bookings = bookings
	} else {
		l.bookings = append(l.bookings, seed...)
	}
	return l
}

// Bookings returns a copy of the ledger in newest-first order.
func (l *BookingLedger) Bookings() []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

// Create normalizes the travel date to ISO form when parseable, assigns a
// BK-#### id and today's booking date, forces status to Confirmed regardless
// of anything the caller suggested, and prepends the record.
func (l *BookingLedger) Create(ctx context.Context, in ports.BookingInput) domain.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	booking := domain.Booking{
		ID:           newBookingID(),
		FlightNumber: in.FlightNumber,
		Airline:      in.Airline,
		From:         in.From,
		FromCode:     in.FromCode,
		To:           in.To,
		ToCode:       in.ToCode,
		Date:         normalizeDate(in.Date),
		Time:         in.Time,
		Arrival:      in.Arrival,
		Duration:     in.Duration,
		Passenger:    in.Passenger,
		Seat:         in.Seat,
		Class:        in.Class,
		Price:        in.Price,
		Status:       domain.BookingConfirmed,
		BookingDate:  l.now().Format(isoDate),
	}

	l.bookings = append([]domain.Booking{booking}, l.bookings...)
	l.persistLocked(ctx)

	l.log.Info().Str("id", booking.ID).Str("flight_number", booking.FlightNumber).Msg("booking created")
	return booking
}

// Cancel flips the matching booking to Cancelled. The record is retained.
func (l *BookingLedger) Cancel(ctx context.Context, id string) {
	l.SetStatus(ctx, id, domain.BookingCancelled)
}

// SetStatus unconditionally overwrites the status of the matching booking;
// no transition guard is enforced. Unknown ids are a silent no-op.
func (l *BookingLedger) SetStatus(ctx context.Context, id string, status domain.BookingStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.bookings {
		if l.bookings[i].ID != id {
			continue
		}
		l.bookings[i].Status = status
		l.persistLocked(ctx)
		return
	}
}

// Upcoming returns Confirmed or Pending bookings dated today or later
// (date-only comparison, today inclusive).
func (l *BookingLedger) Upcoming() []domain.Booking {
	today := dateOnly(l.now())
	return l.filter(func(b domain.Booking) bool {
		if b.Status != domain.BookingConfirmed && b.Status != domain.BookingPending {
			return false
		}
		return !parseDateOnly(b.Date).Before(today)
	})
}

// Past returns Completed bookings plus Confirmed bookings whose date has
// elapsed. The second arm keeps an unreconciled ledger classifying
// identically to one swept by ReconcileCompleted.
func (l *BookingLedger) Past() []domain.Booking {
	today := dateOnly(l.now())
	return l.filter(func(b domain.Booking) bool {
		if b.Status == domain.BookingCompleted {
			return true
		}
		return b.Status == domain.BookingConfirmed && parseDateOnly(b.Date).Before(today)
	})
}

// Cancelled returns all cancelled bookings.
func (l *BookingLedger) Cancelled() []domain.Booking {
	return l.filter(func(b domain.Booking) bool {
		return b.Status == domain.BookingCancelled
	})
}

// ReconcileCompleted materializes the Completed state: Confirmed bookings
// whose date has elapsed are flipped and persisted. Returns the number of
// records changed.
func (l *BookingLedger) ReconcileCompleted(ctx context.Context) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := dateOnly(l.now())
	changed := 0
	for i := range l.bookings {
		if l.bookings[i].Status != domain.BookingConfirmed {
			continue
		}
		if parseDateOnly(l.bookings[i].Date).Before(today) {
			l.bookings[i].Status = domain.BookingCompleted
			changed++
		}
	}
	if changed > 0 {
		l.persistLocked(ctx)
		l.log.Info().Int("count", changed).Msg("bookings reconciled to Completed")
	}
	return changed
}

func (l *BookingLedger) filter(keep func(domain.Booking) bool) []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []domain.Booking
	for _, b := range l.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

func (l *BookingLedger) persistLocked(ctx context.Context) {
	persistSnapshot(ctx, l.store, l.log, KeyBookings, l.bookings)
}

// newBookingID returns an id in the BK-#### format (four decimal digits).
// Uniqueness is not guaranteed; the ledger tolerates collisions.
func newBookingID() string {
	var buf [2]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return fmt.Sprintf("BK-%04d", 1000+time.Now().UnixNano()%9000)
	}
	n := int(binary.BigEndian.Uint16(buf[:]))
	return fmt.Sprintf("BK-%04d", 1000+n%9000)
}

// normalizeDate converts s to ISO YYYY-MM-DD when it parses as a date, and
// passes it through verbatim otherwise.
func normalizeDate(s string) string {
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(isoDate)
		}
	}
	return s
}

// parseDateOnly interprets a stored date string at day granularity.
// Unparseable dates fall back to epoch and therefore sort as maximally past.
func parseDateOnly(s string) time.Time {
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t)
		}
	}
	return time.Unix(0, 0).UTC()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
