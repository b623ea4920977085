package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"

	"github.com/minsu-dev/brandsite-backend/internal/models"
	"github.com/minsu-dev/brandsite-backend/internal/repositories"
	"github.com/minsu-dev/brandsite-backend/pkg/timeslot"
)

var (
	// ErrInvalidDate is returned when a date is not a calendar day in
	// models.ReservationDateLayout form.
	ErrInvalidDate = errors.New("invalid reservation date")
	// ErrUnknownSlot is returned when a slot is outside the configured
	// universe.
	ErrUnknownSlot = errors.New("unknown time slot")
	// ErrSlotTaken is returned when the requested slot already has a
	// live reservation.
	ErrSlotTaken = errors.New("time slot already reserved")
	// ErrInvalidStatus is returned on an unknown status transition
	// target.
	ErrInvalidStatus = errors.New("invalid reservation status")
	// ErrNotOwner is returned when a self-service cancel does not carry
	// the booking's name and phone.
	ErrNotOwner = errors.New("reservation details do not match")
)

// Compile-time check to ensure ReservationServiceImpl implements
// ReservationService.
var _ ReservationService = (*ReservationServiceImpl)(nil)

// ReservationServiceImpl handles booking business logic over a fixed
// slot universe configured at construction.
type ReservationServiceImpl struct {
	reservationRepo repositories.ReservationRepository
	slots           []string
}

// NewReservationService creates a new ReservationServiceImpl. slots is
// the business-configured bookable universe, e.g. timeslot.Hours(9, 21).
func NewReservationService(reservationRepo repositories.ReservationRepository, slots []string) *ReservationServiceImpl {
	return &ReservationServiceImpl{reservationRepo: reservationRepo, slots: slots}
}

// Slots returns the configured slot universe.
func (s *ReservationServiceImpl) Slots() []string {
	return s.slots
}

// Availability returns the open slots for a calendar day, in universe
// order. A fully booked day yields an empty list, not an error.
func (s *ReservationServiceImpl) Availability(ctx context.Context, date string) ([]string, error) {
	if _, err := time.Parse(models.ReservationDateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	onDay, err := s.reservationRepo.FindByDate(ctx, date)
	if err != nil {
		slog.Error("Failed to fetch reservations for availability", "error", err, "date", date)
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	bookings := make([]timeslot.Booking, 0, len(onDay))
	for _, r := range onDay {
		bookings = append(bookings, r.Booking())
	}
	return timeslot.Available(s.slots, bookings), nil
}

// CreateReservation validates the request and re-checks availability
// before insert. The re-check is advisory only: two concurrent requests
// for the same slot can both pass it, and the authoritative guard
// belongs to the storage write path.
func (s *ReservationServiceImpl) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	if _, err := time.Parse(models.ReservationDateLayout, reservation.Date); err != nil {
		return ErrInvalidDate
	}
	if !s.knownSlot(reservation.Slot) {
		return ErrUnknownSlot
	}

	open, err := s.Availability(ctx, reservation.Date)
	if err != nil {
		return err
	}
	if !contains(open, reservation.Slot) {
		return ErrSlotTaken
	}

	if reservation.Status == "" {
		reservation.Status = timeslot.StatusPending
	}
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		slog.Error("Failed to create reservation", "error", err, "date", reservation.Date, "slot", reservation.Slot)
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	slog.Info("Reservation created", "reservationId", reservation.ID,
		"date", reservation.Date, "slot", reservation.Slot)
	return nil
}

// Cancel is the public self-service cancellation. The caller must
// present the name and phone the booking was made with; an ID alone is
// not proof of ownership.
func (s *ReservationServiceImpl) Cancel(ctx context.Context, id primitive.ObjectID, name, phone string) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reservation not found: %w", err)
	}
	if reservation.Name != name || reservation.Phone != phone {
		slog.Warn("Cancel attempt with mismatched details", "reservationId", id)
		return nil, ErrNotOwner
	}

	reservation.Status = timeslot.StatusCanceled
	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		slog.Error("Failed to cancel reservation", "error", err, "reservationId", id)
		return nil, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	slog.Info("Reservation canceled", "reservationId", id, "date", reservation.Date, "slot", reservation.Slot)
	return reservation, nil
}

func (s *ReservationServiceImpl) GetReservation(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	return s.reservationRepo.FindByID(ctx, id)
}

// ListReservations returns reservations for one day, or all of them
// when date is empty.
func (s *ReservationServiceImpl) ListReservations(ctx context.Context, date string) ([]*models.Reservation, error) {
	if date == "" {
		return s.reservationRepo.FindAll(ctx)
	}
	if _, err := time.Parse(models.ReservationDateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	return s.reservationRepo.FindByDate(ctx, date)
}

// UpdateStatus moves a reservation to the given lifecycle state.
// Canceling frees the slot for subsequent bookings.
func (s *ReservationServiceImpl) UpdateStatus(ctx context.Context, id primitive.ObjectID, status timeslot.Status) (*models.Reservation, error) {
	if !models.ValidReservationStatus(status) {
		return nil, ErrInvalidStatus
	}

	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reservation not found: %w", err)
	}

	reservation.Status = status
	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		slog.Error("Failed to update reservation status", "error", err, "reservationId", id)
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	slog.Info("Reservation status updated", "reservationId", id, "status", status)
	return reservation, nil
}

func (s *ReservationServiceImpl) DeleteReservation(ctx context.Context, id primitive.ObjectID) error {
	return s.reservationRepo.Delete(ctx, id)
}

func (s *ReservationServiceImpl) knownSlot(slot string) bool {
	return contains(s.slots, slot)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
