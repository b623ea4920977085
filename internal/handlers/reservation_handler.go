package handlers

import (
	"encoding/csv"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minsu-dev/brandsite-backend/internal/models"
	"github.com/minsu-dev/brandsite-backend/internal/services"
	"github.com/minsu-dev/brandsite-backend/pkg/timeslot"
)

// ReservationHandler handles booking HTTP requests.
type ReservationHandler struct {
	reservationService services.ReservationService
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(reservationService services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// GetAvailability handles GET /reservations/availability?date=YYYY-MM-DD.
func (h *ReservationHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	open, err := h.reservationService.Availability(c, date)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute availability: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      date,
		"slots":     h.reservationService.Slots(),
		"available": open,
	})
}

// CreateReservation handles POST /reservations.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := c.ShouldBindJSON(&reservation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	err := h.reservationService.CreateReservation(c, &reservation)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, reservation)
	case errors.Is(err, services.ErrInvalidDate), errors.Is(err, services.ErrUnknownSlot):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation: " + err.Error()})
	}
}

// ListReservations handles GET /admin/reservations?date=.
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	reservations, err := h.reservationService.ListReservations(c, c.Query("date"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reservations: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservation handles GET /admin/reservations/:id.
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	reservation, err := h.reservationService.GetReservation(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// UpdateReservationStatus handles PATCH /admin/reservations/:id/status.
func (h *ReservationHandler) UpdateReservationStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var body struct {
		Status timeslot.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	reservation, err := h.reservationService.UpdateStatus(c, id, body.Status)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, reservation)
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Failed to update reservation: " + err.Error()})
	}
}

// CancelReservation handles POST /reservations/:id/cancel. The caller
// must present the booking's name and phone. Canceling frees the slot;
// the record is kept.
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var body struct {
		Name  string `json:"name" binding:"required"`
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	reservation, err := h.reservationService.Cancel(c, id, body.Name, body.Phone)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, reservation)
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Failed to cancel reservation: " + err.Error()})
	}
}

// DeleteReservation handles DELETE /admin/reservations/:id.
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.reservationService.DeleteReservation(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reservation: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted"})
}

// ExportReservationsCSV handles GET /admin/reservations/export. It
// streams all reservations as CSV with a UTF-8 BOM so spreadsheet
// tools pick up the encoding.
func (h *ReservationHandler) ExportReservationsCSV(c *gin.Context) {
	reservations, err := h.reservationService.ListReservations(c, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reservations: " + err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment;filename=reservations.csv")
	if _, err := c.Writer.Write([]byte("\xef\xbb\xbf")); err != nil {
		c.String(http.StatusInternalServerError, "Error writing CSV")
		return
	}

	w := csv.NewWriter(c.Writer)
	if err := w.Write([]string{"date", "slot", "name", "phone", "status", "note"}); err != nil {
		c.String(http.StatusInternalServerError, "Error writing CSV")
		return
	}
	for _, r := range reservations {
		row := []string{r.Date, r.Slot, r.Name, r.Phone, string(r.Status), r.Note}
		if err := w.Write(row); err != nil {
			c.String(http.StatusInternalServerError, "Error writing CSV")
			return
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		c.String(http.StatusInternalServerError, "Error writing CSV")
	}
}
