// Package schedule defines the canonical catalog of bookable time slots.
//
// The catalog is fixed and date-independent: the business day runs from
// 10:00 through 16:30 in half-hour steps, with the 13:00–14:00 lunch hour
// excluded. Everything here is pure; callers filter the catalog against
// persisted bookings to compute availability.
package schedule

import "fmt"

const (
	// openingHour is the first bookable hour of the day (inclusive).
	openingHour = 10
	// closingHour is the last bookable hour of the day (inclusive).
	closingHour = 16
	// lunchHour has no bookable slots.
	lunchHour = 13
)

// slotMinutes are the minute offsets at which slots start within each hour.
var slotMinutes = [...]int{0, 30}

// Catalog returns the ordered list of bookable slot labels, formatted as
// zero-padded "HH:MM". The result is a fresh slice on every call, so callers
// may filter it in place.
func Catalog() []string {
	out := make([]string, 0, (closingHour-openingHour)*len(slotMinutes))
	for hour := openingHour; hour <= closingHour; hour++ {
		if hour == lunchHour {
			continue
		}
		for _, minute := range slotMinutes {
			out = append(out, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return out
}

// Contains reports whether label is a member of the canonical catalog.
// It is used to reject bookings for off-grid or lunch-hour labels before
// they reach storage.
func Contains(label string) bool {
	for _, s := range Catalog() {
		if s == label {
			return true
		}
	}
	return false
}
