// Package seed holds the fixed dataset loaded when a snapshot key is absent
// or unparseable, so a fresh deployment starts with a usable inventory.
package seed

import "github.com/skywings/booking-system/internal/core/domain"

// Flights returns the initial flight inventory.
func Flights() []domain.Flight {
	return []domain.Flight{
		{
			ID: 1, Airline: "SkyWings Airways", FlightNumber: "SW-101",
			From: "New York (JFK)", To: "London (LHR)",
			Departure: "10:30 AM", Arrival: "10:45 PM", Duration: "7h 15m",
			Date: "Oct 25, 2025", Price: 650, Class: domain.ClassEconomy,
			Stops: "Non-stop", Rating: 4.8, Status: domain.FlightActive,
			Aircraft: "Boeing 787", Capacity: 242, Booked: 189,
		},
		{
			ID: 2, Airline: "SkyWings Premium", FlightNumber: "SW-205",
			From: "Los Angeles (LAX)", To: "Tokyo (NRT)",
			Departure: "2:45 PM", Arrival: "6:30 PM +1", Duration: "11h 45m",
			Date: "Oct 26, 2025", Price: 1200, Class: domain.ClassBusiness,
			Stops: "Non-stop", Rating: 4.9, Status: domain.FlightActive,
			Aircraft: "Airbus A350", Capacity: 298, Booked: 245,
		},
		{
			ID: 3, Airline: "SkyWings Express", FlightNumber: "SW-312",
			From: "Dubai (DXB)", To: "Singapore (SIN)",
			Departure: "8:15 AM", Arrival: "6:00 PM", Duration: "6h 45m",
			Date: "Oct 27, 2025", Price: 480, Class: domain.ClassEconomy,
			Stops: "Non-stop", Rating: 4.7, Status: domain.FlightActive,
			Aircraft: "Boeing 777", Capacity: 368, Booked: 302,
		},
		{
			ID: 4, Airline: "SkyWings Connect", FlightNumber: "SW-428",
			From: "Paris (CDG)", To: "Sydney (SYD)",
			Departure: "11:00 AM", Arrival: "9:30 AM +1", Duration: "19h 30m",
			Date: "Oct 28, 2025", Price: 890, Class: domain.ClassEconomy,
			Stops: "1 Stop", Rating: 4.6, Status: domain.FlightDelayed,
			Aircraft: "Airbus A380", Capacity: 525, Booked: 412,
		},
		{
			ID: 5, Airline: "SkyWings First", FlightNumber: "SW-599",
			From: "Miami (MIA)", To: "Barcelona (BCN)",
			Departure: "5:20 PM", Arrival: "7:15 AM +1", Duration: "8h 55m",
			Date: "Oct 29, 2025", Price: 2100, Class: domain.ClassFirst,
			Stops: "Non-stop", Rating: 5.0, Status: domain.FlightActive,
			Aircraft: "Boeing 787", Capacity: 248, Booked: 198,
		},
		{
			ID: 6, Airline: "SkyWings Regional", FlightNumber: "SW-645",
			From: "Toronto (YYZ)", To: "Vancouver (YVR)",
			Departure: "9:00 AM", Arrival: "11:30 AM", Duration: "4h 30m",
			Date: "Oct 30, 2025", Price: 320, Class: domain.ClassEconomy,
			Stops: "Non-stop", Rating: 4.5, Status: domain.FlightScheduled,
			Aircraft: "Airbus A320", Capacity: 186, Booked: 124,
		},
	}
}

// Users returns the initial user directory.
func Users() []domain.User {
	return []domain.User{
		{ID: "USR-001", Name: "John Smith", Email: "john.smith@example.com", Role: domain.RoleUser, MemberSince: "Jan 2023", TotalFlights: 24, LoyaltyPoints: 3450, Status: domain.UserActive, LastLogin: "2 hours ago"},
		{ID: "USR-002", Name: "Sarah Mitchell", Email: "sarah.mitchell@example.com", Role: domain.RoleUser, MemberSince: "Mar 2023", TotalFlights: 18, LoyaltyPoints: 2890, Status: domain.UserActive, LastLogin: "1 day ago"},
		{ID: "USR-003", Name: "Michael Chen", Email: "michael.chen@example.com", Role: domain.RoleUser, MemberSince: "May 2023", TotalFlights: 31, LoyaltyPoints: 4720, Status: domain.UserActive, LastLogin: "3 hours ago"},
		{ID: "USR-004", Name: "Emily Davis", Email: "emily.davis@example.com", Role: domain.RoleUser, MemberSince: "Feb 2023", TotalFlights: 42, LoyaltyPoints: 6180, Status: domain.UserActive, LastLogin: "5 days ago"},
		{ID: "USR-005", Name: "David Wilson", Email: "david.wilson@example.com", Role: domain.RoleUser, MemberSince: "Jul 2023", TotalFlights: 12, LoyaltyPoints: 1560, Status: domain.UserActive, LastLogin: "1 week ago"},
		{ID: "USR-006", Name: "Jessica Brown", Email: "jessica.brown@example.com", Role: domain.RoleUser, MemberSince: "Apr 2023", TotalFlights: 8, LoyaltyPoints: 920, Status: domain.UserInactive, LastLogin: "2 weeks ago"},
		{ID: "ADM-001", Name: "Admin User", Email: "admin@skywings.com", Role: domain.RoleAdmin, MemberSince: "Jan 2023", TotalFlights: 0, LoyaltyPoints: 0, Status: domain.UserActive, LastLogin: "Just now"},
	}
}

// Bookings returns the initial booking ledger.
func Bookings() []domain.Booking {
	return []domain.Booking{
		{ID: "BK-2451", FlightNumber: "SW-101", Airline: "SkyWings Airways", From: "New York", FromCode: "JFK", To: "London", ToCode: "LHR", Date: "2025-10-25", Time: "10:30 AM", Arrival: "10:45 PM", Duration: "7h 15m", Status: domain.BookingConfirmed, Seat: "12A", Class: domain.ClassBusiness, Price: 1200, Passenger: "John Smith", BookingDate: "2025-10-10"},
		{ID: "BK-2458", FlightNumber: "SW-205", Airline: "SkyWings Premium", From: "Los Angeles", FromCode: "LAX", To: "Tokyo", ToCode: "NRT", Date: "2025-11-02", Time: "2:45 PM", Arrival: "6:30 PM +1", Duration: "11h 45m", Status: domain.BookingConfirmed, Seat: "8C", Class: domain.ClassEconomy, Price: 650, Passenger: "John Smith", BookingDate: "2025-10-12"},
		{ID: "BK-2387", FlightNumber: "SW-445", Airline: "SkyWings International", From: "Paris", FromCode: "CDG", To: "New York", ToCode: "JFK", Date: "2025-09-15", Time: "11:00 AM", Arrival: "1:30 PM", Duration: "8h 30m", Status: domain.BookingCompleted, Seat: "5B", Class: domain.ClassBusiness, Price: 850, Passenger: "John Smith", BookingDate: "2025-09-01"},
		{ID: "BK-2312", FlightNumber: "SW-312", Airline: "SkyWings Express", From: "Dubai", FromCode: "DXB", To: "Singapore", ToCode: "SIN", Date: "2025-08-20", Time: "8:15 AM", Arrival: "6:00 PM", Duration: "6h 45m", Status: domain.BookingCompleted, Seat: "15F", Class: domain.ClassEconomy, Price: 620, Passenger: "John Smith", BookingDate: "2025-08-05"},
		{ID: "BK-2256", FlightNumber: "SW-428", Airline: "SkyWings Connect", From: "London", FromCode: "LHR", To: "Sydney", ToCode: "SYD", Date: "2025-07-10", Time: "11:00 AM", Arrival: "9:30 AM +1", Duration: "19h 30m", Status: domain.BookingCompleted, Seat: "22D", Class: domain.ClassEconomy, Price: 1250, Passenger: "John Smith", BookingDate: "2025-06-25"},
	}
}
