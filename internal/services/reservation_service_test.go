package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minsu-dev/brandsite-backend/internal/models"
	"github.com/minsu-dev/brandsite-backend/pkg/timeslot"
)

var testSlots = timeslot.Hours(10, 14) // 10:00 .. 14:00

func TestReservationServiceAvailability(t *testing.T) {
	t.Run("occupied slots drop out in universe order", func(t *testing.T) {
		repo := &fakeReservationRepo{reservations: []*models.Reservation{
			{ID: primitive.NewObjectID(), Name: "Kim", Date: "2026-09-01", Slot: "11:00", Status: timeslot.StatusConfirmed},
			{ID: primitive.NewObjectID(), Name: "Lee", Date: "2026-09-01", Slot: "13:00", Status: timeslot.StatusPending},
			{ID: primitive.NewObjectID(), Name: "Park", Date: "2026-09-01", Slot: "12:00", Status: timeslot.StatusCanceled},
		}}
		svc := NewReservationService(repo, testSlots)

		open, err := svc.Availability(context.Background(), "2026-09-01")
		require.NoError(t, err)
		assert.Equal(t, []string{"10:00", "12:00", "14:00"}, open)
	})

	t.Run("other days do not affect availability", func(t *testing.T) {
		repo := &fakeReservationRepo{reservations: []*models.Reservation{
			{ID: primitive.NewObjectID(), Name: "Kim", Date: "2026-09-01", Slot: "11:00", Status: timeslot.StatusConfirmed},
		}}
		svc := NewReservationService(repo, testSlots)

		open, err := svc.Availability(context.Background(), "2026-09-02")
		require.NoError(t, err)
		assert.Equal(t, testSlots, open)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		svc := NewReservationService(&fakeReservationRepo{}, testSlots)

		_, err := svc.Availability(context.Background(), "09/01/2026")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestReservationServiceCreateReservation(t *testing.T) {
	t.Run("books an open slot and defaults to pending", func(t *testing.T) {
		repo := &fakeReservationRepo{}
		svc := NewReservationService(repo, testSlots)

		r := &models.Reservation{Name: "Kim", Phone: "010-1234-5678", Date: "2026-09-01", Slot: "10:00"}
		require.NoError(t, svc.CreateReservation(context.Background(), r))
		require.Len(t, repo.reservations, 1)
		assert.Equal(t, timeslot.StatusPending, repo.reservations[0].Status)
	})

	t.Run("rejects a taken slot", func(t *testing.T) {
		repo := &fakeReservationRepo{reservations: []*models.Reservation{
			{ID: primitive.NewObjectID(), Name: "Lee", Date: "2026-09-01", Slot: "10:00", Status: timeslot.StatusPending},
		}}
		svc := NewReservationService(repo, testSlots)

		r := &models.Reservation{Name: "Kim", Date: "2026-09-01", Slot: "10:00"}
		err := svc.CreateReservation(context.Background(), r)
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("canceling frees the slot for rebooking", func(t *testing.T) {
		first := &models.Reservation{ID: primitive.NewObjectID(), Name: "Lee",
			Date: "2026-09-01", Slot: "10:00", Status: timeslot.StatusPending}
		repo := &fakeReservationRepo{reservations: []*models.Reservation{first}}
		svc := NewReservationService(repo, testSlots)

		_, err := svc.UpdateStatus(context.Background(), first.ID, timeslot.StatusCanceled)
		require.NoError(t, err)

		r := &models.Reservation{Name: "Kim", Date: "2026-09-01", Slot: "10:00"}
		assert.NoError(t, svc.CreateReservation(context.Background(), r))
	})

	t.Run("rejects a slot outside the universe", func(t *testing.T) {
		svc := NewReservationService(&fakeReservationRepo{}, testSlots)

		r := &models.Reservation{Name: "Kim", Date: "2026-09-01", Slot: "22:00"}
		err := svc.CreateReservation(context.Background(), r)
		assert.ErrorIs(t, err, ErrUnknownSlot)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		svc := NewReservationService(&fakeReservationRepo{}, testSlots)

		r := &models.Reservation{Name: "Kim", Date: "tomorrow", Slot: "10:00"}
		err := svc.CreateReservation(context.Background(), r)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestReservationServiceCancel(t *testing.T) {
	booked := func() (*models.Reservation, *fakeReservationRepo) {
		r := &models.Reservation{ID: primitive.NewObjectID(), Name: "Kim", Phone: "010-1234-5678",
			Date: "2026-09-01", Slot: "10:00", Status: timeslot.StatusConfirmed}
		return r, &fakeReservationRepo{reservations: []*models.Reservation{r}}
	}

	t.Run("matching details cancel and free the slot", func(t *testing.T) {
		r, repo := booked()
		svc := NewReservationService(repo, testSlots)

		canceled, err := svc.Cancel(context.Background(), r.ID, "Kim", "010-1234-5678")
		require.NoError(t, err)
		assert.Equal(t, timeslot.StatusCanceled, canceled.Status)

		open, err := svc.Availability(context.Background(), "2026-09-01")
		require.NoError(t, err)
		assert.Contains(t, open, "10:00")
	})

	t.Run("mismatched phone is refused and the booking stands", func(t *testing.T) {
		r, repo := booked()
		svc := NewReservationService(repo, testSlots)

		_, err := svc.Cancel(context.Background(), r.ID, "Kim", "010-0000-0000")
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Equal(t, timeslot.StatusConfirmed, repo.reservations[0].Status)
	})

	t.Run("mismatched name is refused", func(t *testing.T) {
		r, repo := booked()
		svc := NewReservationService(repo, testSlots)

		_, err := svc.Cancel(context.Background(), r.ID, "Lee", "010-1234-5678")
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("fails on an unknown reservation", func(t *testing.T) {
		svc := NewReservationService(&fakeReservationRepo{}, testSlots)

		_, err := svc.Cancel(context.Background(), primitive.NewObjectID(), "Kim", "010-1234-5678")
		assert.Error(t, err)
	})
}

func TestReservationServiceUpdateStatus(t *testing.T) {
	t.Run("moves a reservation to confirmed", func(t *testing.T) {
		r := &models.Reservation{ID: primitive.NewObjectID(), Name: "Kim",
			Date: "2026-09-01", Slot: "10:00", Status: timeslot.StatusPending}
		repo := &fakeReservationRepo{reservations: []*models.Reservation{r}}
		svc := NewReservationService(repo, testSlots)

		updated, err := svc.UpdateStatus(context.Background(), r.ID, timeslot.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, timeslot.StatusConfirmed, updated.Status)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		svc := NewReservationService(&fakeReservationRepo{}, testSlots)

		_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID(), "archived")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("fails on an unknown reservation", func(t *testing.T) {
		svc := NewReservationService(&fakeReservationRepo{}, testSlots)

		_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID(), timeslot.StatusConfirmed)
		assert.Error(t, err)
	})
}

func TestReservationServiceListReservations(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []*models.Reservation{
		{ID: primitive.NewObjectID(), Name: "Kim", Date: "2026-09-01", Slot: "10:00", Status: timeslot.StatusPending},
		{ID: primitive.NewObjectID(), Name: "Lee", Date: "2026-09-02", Slot: "11:00", Status: timeslot.StatusConfirmed},
	}}
	svc := NewReservationService(repo, testSlots)

	t.Run("empty date returns everything", func(t *testing.T) {
		all, err := svc.ListReservations(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("date narrows to one day", func(t *testing.T) {
		day, err := svc.ListReservations(context.Background(), "2026-09-02")
		require.NoError(t, err)
		require.Len(t, day, 1)
		assert.Equal(t, "Lee", day[0].Name)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		_, err := svc.ListReservations(context.Background(), "next week")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}
