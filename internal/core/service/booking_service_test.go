package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/skywings/booking-system/internal/core/domain"
	"github.com/skywings/booking-system/internal/core/ports"
)

// refNow is the fixed clock used by the ledger tests: 2026-06-15 10:00 UTC.
var refNow = time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestLedger(seed []domain.Booking) *BookingLedger {
	l := NewBookingLedger(context.Background(), nil, seed, discardLogger)
	l.now = func() time.Time { return refNow }
	return l
}

func minimalBookingInput() ports.BookingInput {
	return ports.BookingInput{
		FlightNumber: "SW-101",
		Airline:      "SkyWings",
		From:         "New York",
		FromCode:     "JFK",
		To:           "London",
		ToCode:       "LHR",
		Date:         "2026-07-01",
		Time:         "10:30 AM",
		Passenger:    "Jane Doe",
		Seat:         "12A",
		Class:        domain.ClassEconomy,
		Price:        450,
	}
}

var bookingIDPattern = regexp.MustCompile(`^BK-\d{4}$`)

func TestBookingLedger_Create_ForcesConfirmed(t *testing.T) {
	l := newTestLedger(nil)

	b := l.Create(context.Background(), minimalBookingInput())
	if b.Status != domain.BookingConfirmed {
		t.Fatalf("new booking must be Confirmed, got %q", b.Status)
	}
	if b.BookingDate != "2026-06-15" {
		t.Fatalf("booking date must be today in ISO form, got %q", b.BookingDate)
	}
}

func TestBookingLedger_Create_IDFormat(t *testing.T) {
	l := newTestLedger(nil)

	for i := 0; i < 20; i++ {
		b := l.Create(context.Background(), minimalBookingInput())
		if !bookingIDPattern.MatchString(b.ID) {
			t.Fatalf("id format wrong: %q", b.ID)
		}
	}
}

func TestBookingLedger_Create_Prepends(t *testing.T) {
	l := newTestLedger(nil)

	first := l.Create(context.Background(), minimalBookingInput())
	second := l.Create(context.Background(), minimalBookingInput())

	all := l.Bookings()
	if len(all) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatal("bookings must be newest-first")
	}
}

func TestBookingLedger_Create_NormalizesDate(t *testing.T) {
	l := newTestLedger(nil)

	cases := []struct {
		in   string
		want string
	}{
		{"2026-07-01", "2026-07-01"},
		{"Jul 1, 2026", "2026-07-01"},
		{"July 1, 2026", "2026-07-01"},
		{"07/01/2026", "2026-07-01"},
		{"sometime next week", "sometime next week"}, // passthrough
	}

	for _, tc := range cases {
		in := minimalBookingInput()
		in.Date = tc.in
		b := l.Create(context.Background(), in)
		if b.Date != tc.want {
			t.Errorf("date %q: expected %q, got %q", tc.in, tc.want, b.Date)
		}
	}
}

func TestBookingLedger_Upcoming_TodayIsInclusive(t *testing.T) {
	l := newTestLedger([]domain.Booking{
		{ID: "BK-0001", Date: "2026-06-15", Status: domain.BookingConfirmed}, // today
		{ID: "BK-0002", Date: "2026-06-16", Status: domain.BookingPending},   // tomorrow
		{ID: "BK-0003", Date: "2026-06-14", Status: domain.BookingConfirmed}, // yesterday
		{ID: "BK-0004", Date: "2026-06-20", Status: domain.BookingCancelled}, // future but cancelled
	})

	up := l.Upcoming()
	if len(up) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(up))
	}
	for _, b := range up {
		if b.ID != "BK-0001" && b.ID != "BK-0002" {
			t.Errorf("unexpected booking in upcoming: %s", b.ID)
		}
	}
}

func TestBookingLedger_Past_ExpiredConfirmedAndCompleted(t *testing.T) {
	l := newTestLedger([]domain.Booking{
		{ID: "BK-0001", Date: "2026-06-14", Status: domain.BookingConfirmed}, // expired, unreconciled
		{ID: "BK-0002", Date: "2026-01-01", Status: domain.BookingCompleted},
		{ID: "BK-0003", Date: "2026-06-15", Status: domain.BookingConfirmed}, // today: not past
		{ID: "BK-0004", Date: "2026-06-10", Status: domain.BookingCancelled}, // cancelled never past
	})

	past := l.Past()
	if len(past) != 2 {
		t.Fatalf("expected 2 past, got %d", len(past))
	}
	for _, b := range past {
		if b.ID != "BK-0001" && b.ID != "BK-0002" {
			t.Errorf("unexpected booking in past: %s", b.ID)
		}
	}
}

func TestBookingLedger_UnparseableDateClassifiesAsPast(t *testing.T) {
	l := newTestLedger([]domain.Booking{
		{ID: "BK-0001", Date: "garbage", Status: domain.BookingConfirmed},
	})

	if len(l.Upcoming()) != 0 {
		t.Error("unparseable date must not be upcoming")
	}
	if len(l.Past()) != 1 {
		t.Error("unparseable date must classify as past")
	}
}

func TestBookingLedger_Cancel_IsExclusiveAndRetained(t *testing.T) {
	l := newTestLedger([]domain.Booking{
		{ID: "BK-0001", Date: "2026-07-01", Status: domain.BookingConfirmed},
	})

	l.Cancel(context.Background(), "BK-0001")

	if len(l.Upcoming()) != 0 || len(l.Past()) != 0 {
		t.Error("cancelled booking must appear in no other view")
	}
	cancelled := l.Cancelled()
	if len(cancelled) != 1 || cancelled[0].ID != "BK-0001" {
		t.Fatalf("cancelled view wrong: %+v", cancelled)
	}
	// Never hard-deleted.
	if len(l.Bookings()) != 1 {
		t.Fatal("cancel must retain the record")
	}
}

func TestBookingLedger_SetStatus_UnknownIDIsSilentNoOp(t *testing.T) {
	store := newStubSnapshotStore()
	l := NewBookingLedger(context.Background(), store, nil, discardLogger)

	l.SetStatus(context.Background(), "BK-9999", domain.BookingCompleted)
	if store.saves != 0 {
		t.Fatal("no-op status change must not write a snapshot")
	}
}

func TestBookingLedger_ReconcileCompleted(t *testing.T) {
	l := newTestLedger([]domain.Booking{
		{ID: "BK-0001", Date: "2026-06-14", Status: domain.BookingConfirmed}, // flips
		{ID: "BK-0002", Date: "2026-06-16", Status: domain.BookingConfirmed}, // future: untouched
		{ID: "BK-0003", Date: "2026-06-01", Status: domain.BookingPending},   // pending: untouched
		{ID: "BK-0004", Date: "2026-06-01", Status: domain.BookingCancelled}, // cancelled: untouched
	})

	if n := l.ReconcileCompleted(context.Background()); n != 1 {
		t.Fatalf("expected 1 reconciled, got %d", n)
	}

	byID := make(map[string]domain.BookingStatus)
	for _, b := range l.Bookings() {
		byID[b.ID] = b.Status
	}
	if byID["BK-0001"] != domain.BookingCompleted {
		t.Error("expired confirmed booking must flip to Completed")
	}
	if byID["BK-0002"] != domain.BookingConfirmed || byID["BK-0003"] != domain.BookingPending || byID["BK-0004"] != domain.BookingCancelled {
		t.Errorf("reconcile touched the wrong records: %v", byID)
	}

	// Second sweep finds nothing.
	if n := l.ReconcileCompleted(context.Background()); n != 0 {
		t.Fatalf("second sweep must be empty, got %d", n)
	}
}

func TestBookingLedger_Lifecycle_PendingToCompleted(t *testing.T) {
	l := newTestLedger([]domain.Booking{
		{ID: "BK-0001", Date: "2026-06-10", Status: domain.BookingPending},
	})

	// Payment completes: Pending → Confirmed.
	l.SetStatus(context.Background(), "BK-0001", domain.BookingConfirmed)
	// Travel date already elapsed, so it now reads as past even unreconciled.
	if len(l.Past()) != 1 {
		t.Fatal("confirmed booking with elapsed date must be past")
	}

	l.ReconcileCompleted(context.Background())
	if l.Bookings()[0].Status != domain.BookingCompleted {
		t.Fatal("reconcile must materialize Completed")
	}
	if len(l.Past()) != 1 {
		t.Fatal("classification must not change across reconcile")
	}
}

func TestBookingLedger_PersistsOnMutation(t *testing.T) {
	store := newStubSnapshotStore()
	l := NewBookingLedger(context.Background(), store, nil, discardLogger)

	created := l.Create(context.Background(), minimalBookingInput())
	if store.saves != 1 {
		t.Fatalf("expected 1 snapshot write after create, got %d", store.saves)
	}

	reloaded := NewBookingLedger(context.Background(), store, nil, discardLogger)
	all := reloaded.Bookings()
	if len(all) != 1 || all[0].ID != created.ID {
		t.Fatalf("snapshot reload lost the booking: %+v", all)
	}
}
