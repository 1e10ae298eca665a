package views

import (
	"github.com/skywings/booking-system/internal/core/domain"
	"github.com/skywings/booking-system/internal/core/ports"
)

// SystemStats are the composite dashboard aggregates: the flight directory's
// stats plus the end-user count owned by the user directory.
type SystemStats struct {
	TotalFlights  int     `json:"totalFlights"`
	TotalUsers    int     `json:"totalUsers"`
	ActiveFlights int     `json:"activeFlights"`
	TotalRevenue  float64 `json:"totalRevenue"`
	OnTimeRate    float64 `json:"onTimeRate"`
	AverageRating float64 `json:"averageRating"`
}

// Dashboard is the full composite view backing the admin dashboard cards.
type Dashboard struct {
	Stats          SystemStats      `json:"stats"`
	UpcomingCount  int              `json:"upcomingCount"`
	PastCount      int              `json:"pastCount"`
	CancelledCount int              `json:"cancelledCount"`
	RecentBookings []domain.Booking `json:"recentBookings"`
}

// BuildSystemStats combines flight aggregates with the role=User count.
func BuildSystemStats(fs ports.FlightStats, users []domain.User) SystemStats {
	return SystemStats{
		TotalFlights:  fs.TotalFlights,
		TotalUsers:    CountEndUsers(users),
		ActiveFlights: fs.ActiveFlights,
		TotalRevenue:  fs.TotalRevenue,
		OnTimeRate:    fs.OnTimeRate,
		AverageRating: fs.AverageRating,
	}
}

// BuildDashboard assembles the composite dashboard. recentN limits the
// recent-activity slice; bookings arrive newest-first from the ledger, so no
// secondary sort is applied.
func BuildDashboard(fs ports.FlightStats, users []domain.User, upcoming, past, cancelled, recent []domain.Booking, recentN int) Dashboard {
	return Dashboard{
		Stats:          BuildSystemStats(fs, users),
		UpcomingCount:  len(upcoming),
		PastCount:      len(past),
		CancelledCount: len(cancelled),
		RecentBookings: Recent(recent, recentN),
	}
}

// CountEndUsers counts directory entries with role User.
func CountEndUsers(users []domain.User) int {
	n := 0
	for _, u := range users {
		if u.Role == domain.RoleUser {
			n++
		}
	}
	return n
}

// Recent returns the first n bookings (insertion order is newest-first).
func Recent(bookings []domain.Booking, n int) []domain.Booking {
	if n < 0 {
		n = 0
	}
	if n > len(bookings) {
		n = len(bookings)
	}
	out := make([]domain.Booking, n)
	copy(out, bookings[:n])
	return out
}
