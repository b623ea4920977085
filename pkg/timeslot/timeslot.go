// Package timeslot computes which bookable time slots of a day remain
// open given the reservations already placed on it. It is a pure
// read-side helper: it does not guard against two clients racing for
// the same freshly-open slot, that belongs to the storage write path.
package timeslot

import "fmt"

// Status is the lifecycle state of a booking as far as slot occupancy
// is concerned.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

// Booking is the minimal view of a reservation this package needs.
// The caller is responsible for restricting bookings to one day.
type Booking struct {
	Slot   string
	Status Status
}

// Occupies reports whether a booking in the given status holds its
// slot. Canceled bookings free their slot.
func Occupies(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// Hours builds the hourly slot universe from open to close inclusive,
// e.g. Hours(9, 21) yields "09:00" through "21:00" (13 slots).
func Hours(open, close int) []string {
	if close < open {
		return []string{}
	}
	slots := make([]string, 0, close-open+1)
	for h := open; h <= close; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

// Available returns the subset of allSlots not held by a live booking,
// preserving the order of allSlots. An empty result means the day is
// fully booked and is a valid outcome, not an error.
func Available(allSlots []string, bookings []Booking) []string {
	occupied := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if Occupies(b.Status) {
			occupied[b.Slot] = true
		}
	}

	open := make([]string, 0, len(allSlots))
	for _, s := range allSlots {
		if !occupied[s] {
			open = append(open, s)
		}
	}
	return open
}
