package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minsu-dev/brandsite-backend/pkg/timeslot"
)

// ReservationDateLayout is the calendar-day format reservations carry.
// Dates are stored as plain day strings, slots as "HH:00" labels.
const ReservationDateLayout = "2006-01-02"

// Reservation is one booking of a time slot on a calendar day.
type Reservation struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" binding:"required"`
	Phone     string             `json:"phone" bson:"phone"`
	Date      string             `json:"date" bson:"date" binding:"required"`
	Slot      string             `json:"slot" bson:"slot" binding:"required"`
	Status    timeslot.Status    `json:"status" bson:"status"`
	Note      string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NewReservation creates a Reservation with default values.
func NewReservation() *Reservation {
	return &Reservation{
		Status:    timeslot.StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// Booking returns the occupancy view used by availability computation.
func (r *Reservation) Booking() timeslot.Booking {
	return timeslot.Booking{Slot: r.Slot, Status: r.Status}
}

// ValidReservationStatus reports whether s is a known lifecycle state.
func ValidReservationStatus(s timeslot.Status) bool {
	switch s {
	case timeslot.StatusPending, timeslot.StatusConfirmed, timeslot.StatusCanceled:
		return true
	}
	return false
}
