// Package views holds the derived-view computations: pure, stateless
// transformations over the flight directory and booking ledger. Every call
// is a fresh pass over the input — nothing here caches or mutates.
package views

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/skywings/booking-system/internal/core/domain"
)

// Sort keys accepted by FlightQuery.
const (
	SortPrice     = "price"     // ascending
	SortRating    = "rating"    // descending
	SortDuration  = "duration"  // ascending, parsed from "Xh Ym"
	SortDeparture = "departure" // ascending, parsed from "H:MM AM/PM"
)

// classVocabulary maps the query-string class filter to the stored fare class.
var classVocabulary = map[string]domain.FareClass{
	"economy":  domain.ClassEconomy,
	"business": domain.ClassBusiness,
	"first":    domain.ClassFirst,
}

// FlightQuery is one search/filter/sort request over the flight directory.
type FlightQuery struct {
	Search string // case-insensitive substring over from/to/airline/flightNumber
	Class  string // "all" or empty disables; economy|business|first
	SortBy string // one of the Sort* keys; anything else keeps input order
}

// ApplyFlightQuery filters and sorts flights. The input slice is not
// modified.
func ApplyFlightQuery(flights []domain.Flight, q FlightQuery) []domain.Flight {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	results := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if needle != "" && !matchesSearch(f, needle) {
			continue
		}
		results = append(results, f)
	}

	if q.Class != "" && q.Class != "all" {
		want, ok := classVocabulary[q.Class]
		if !ok {
			want = domain.FareClass(q.Class)
		}
		kept := results[:0]
		for _, f := range results {
			if f.Class == want {
				kept = append(kept, f)
			}
		}
		results = kept
	}

	switch q.SortBy {
	case SortPrice:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Price < results[j].Price })
	case SortRating:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Rating > results[j].Rating })
	case SortDuration:
		sort.SliceStable(results, func(i, j int) bool {
			return parseDurationMinutes(results[i].Duration) < parseDurationMinutes(results[j].Duration)
		})
	case SortDeparture:
		sort.SliceStable(results, func(i, j int) bool {
			return parseClockMinutes(results[i].Departure) < parseClockMinutes(results[j].Departure)
		})
	}

	return results
}

func matchesSearch(f domain.Flight, needle string) bool {
	for _, field := range []string{f.From, f.To, f.Airline, f.FlightNumber} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

var durationPattern = regexp.MustCompile(`(\d+)h\s*(\d+)?m?`)

// parseDurationMinutes converts "7h 15m" style strings to minutes.
// Unparseable input degrades to 0.
func parseDurationMinutes(s string) int {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	return hours*60 + minutes
}

var clockPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(AM|PM)`)

// parseClockMinutes converts "10:30 AM" style strings to minutes since
// midnight, ignoring any "+1" day-overflow suffix. Unparseable input
// degrades to 0.
func parseClockMinutes(s string) int {
	m := clockPattern.FindStringSubmatch(strings.ToUpper(s))
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if m[3] == "PM" && hours != 12 {
		hours += 12
	}
	if m[3] == "AM" && hours == 12 {
		hours = 0
	}
	return hours*60 + minutes
}
