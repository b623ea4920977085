package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minsu-dev/brandsite-backend/internal/models"
	"github.com/minsu-dev/brandsite-backend/internal/services"
)

// EventHandler handles promotional event HTTP requests.
type EventHandler struct {
	eventService services.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// ListEvents handles GET /events (active events with countdowns).
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents(c, false, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get events: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

// ListAllEvents handles GET /admin/events (hidden included).
func (h *EventHandler) ListAllEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents(c, true, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get events: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /events/:id.
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	event, err := h.eventService.GetEvent(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// GetEventStatus handles GET /events/:id/status.
func (h *EventHandler) GetEventStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	result, err := h.eventService.EventStatus(c, id, time.Now())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Draw handles POST /events/:id/draw. The outcome is returned but not
// persisted.
func (h *EventHandler) Draw(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	prize, err := h.eventService.Draw(c, id, time.Now())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"prize": prize})
	case errors.Is(err, services.ErrEventEnded), errors.Is(err, services.ErrEventHidden):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNoPrizes):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	}
}

// CreateEvent handles POST /admin/events.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.eventService.CreateEvent(c, &event); err != nil {
		if errors.Is(err, services.ErrInvalidEventType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateEvent handles PUT /admin/events/:id.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	event.ID = id

	if err := h.eventService.UpdateEvent(c, &event); err != nil {
		if errors.Is(err, services.ErrInvalidEventType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Failed to update event: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /admin/events/:id.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.eventService.DeleteEvent(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
