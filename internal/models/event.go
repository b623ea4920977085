package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minsu-dev/brandsite-backend/pkg/weighted"
)

// EventType identifies the mini-game mechanic a promotional event runs.
type EventType string

const (
	EventTypeWheel      EventType = "wheel"
	EventTypeLadder     EventType = "ladder"
	EventTypeStamp      EventType = "stamp"
	EventTypeQuiz       EventType = "quiz"
	EventTypeTimeSale   EventType = "timesale"
	EventTypeAttendance EventType = "attendance"
)

// ValidEventType reports whether t is one of the supported mechanics.
func ValidEventType(t EventType) bool {
	switch t {
	case EventTypeWheel, EventTypeLadder, EventTypeStamp,
		EventTypeQuiz, EventTypeTimeSale, EventTypeAttendance:
		return true
	}
	return false
}

// EventStatus controls visibility on the public site.
type EventStatus string

const (
	EventStatusActive EventStatus = "ACTIVE"
	EventStatusHidden EventStatus = "HIDDEN"
)

// PrizeItem is one entry of an event's prize table. The same table
// backs both the wheel and the ladder mechanic.
type PrizeItem struct {
	ID     int64   `json:"id" bson:"id"`
	Label  string  `json:"label" bson:"label"`
	Weight float64 `json:"weight" bson:"weight"`
	Color  string  `json:"color,omitempty" bson:"color,omitempty"`
}

// Option converts the prize row into a weighted draw candidate.
func (p PrizeItem) Option() weighted.Option {
	return weighted.Option{ID: p.ID, Label: p.Label, Weight: p.Weight, Color: p.Color}
}

// Event is a date-bounded promotion with an attached mechanic.
type Event struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" binding:"required"`
	Description string             `json:"description" bson:"description"`
	Type        EventType          `json:"type" bson:"type"`
	BannerURL   string             `json:"bannerUrl,omitempty" bson:"bannerUrl,omitempty"`
	StartAt     time.Time          `json:"startAt" bson:"startAt"`
	EndAt       time.Time          `json:"endAt" bson:"endAt"`
	Status      EventStatus        `json:"status" bson:"status"`
	Prizes      []PrizeItem        `json:"prizes,omitempty" bson:"prizes,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NewEvent creates an Event with default values.
func NewEvent() *Event {
	return &Event{
		Status:    EventStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// PrizeOptions returns the prize table as weighted draw candidates.
func (e *Event) PrizeOptions() []weighted.Option {
	opts := make([]weighted.Option, 0, len(e.Prizes))
	for _, p := range e.Prizes {
		opts = append(opts, p.Option())
	}
	return opts
}
