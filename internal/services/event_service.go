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
	"github.com/minsu-dev/brandsite-backend/pkg/dday"
	"github.com/minsu-dev/brandsite-backend/pkg/weighted"
)

var (
	// ErrEventEnded is returned when a draw is requested on an event
	// whose end has passed.
	ErrEventEnded = errors.New("event has ended")
	// ErrEventHidden is returned when a draw is requested on an event
	// not visible to the public site.
	ErrEventHidden = errors.New("event is not active")
	// ErrNoPrizes is returned when an event has no prize table to draw
	// from.
	ErrNoPrizes = errors.New("event has no prizes configured")
	// ErrInvalidEventType is returned when an event names an unknown
	// mechanic.
	ErrInvalidEventType = errors.New("invalid event type")
)

// Compile-time check to ensure EventServiceImpl implements EventService.
var _ EventService = (*EventServiceImpl)(nil)

// EventServiceImpl handles promotional event business logic. Both the
// wheel and ladder mechanics draw through pkg/weighted so their
// fairness semantics cannot diverge.
type EventServiceImpl struct {
	eventRepo repositories.EventRepository
}

// NewEventService creates a new EventServiceImpl.
func NewEventService(eventRepo repositories.EventRepository) *EventServiceImpl {
	return &EventServiceImpl{eventRepo: eventRepo}
}

// ListEvents returns events joined with their countdown classification
// at now. Hidden events are filtered in memory unless includeHidden.
func (s *EventServiceImpl) ListEvents(ctx context.Context, includeHidden bool, now time.Time) ([]EventView, error) {
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		slog.Error("Failed to fetch events", "error", err)
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	views := make([]EventView, 0, len(events))
	for _, e := range events {
		if !includeHidden && e.Status != models.EventStatusActive {
			continue
		}
		views = append(views, EventView{
			Event: e,
			Dday:  dday.Classify(dday.Range{Start: e.StartAt, End: e.EndAt}, now),
		})
	}
	return views, nil
}

func (s *EventServiceImpl) GetEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

// EventStatus classifies an event's date range at now.
func (s *EventServiceImpl) EventStatus(ctx context.Context, id primitive.ObjectID, now time.Time) (dday.Result, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return dday.Result{}, fmt.Errorf("event not found: %w", err)
	}
	return dday.Classify(dday.Range{Start: event.StartAt, End: event.EndAt}, now), nil
}

// Draw performs one weighted prize draw on the event's prize table.
// The outcome is returned to the caller and not persisted.
func (s *EventServiceImpl) Draw(ctx context.Context, id primitive.ObjectID, now time.Time) (weighted.Option, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return weighted.Option{}, fmt.Errorf("event not found: %w", err)
	}

	if event.Status != models.EventStatusActive {
		return weighted.Option{}, ErrEventHidden
	}
	if dday.Classify(dday.Range{Start: event.StartAt, End: event.EndAt}, now).Status == dday.StatusEnded {
		return weighted.Option{}, ErrEventEnded
	}
	if len(event.Prizes) == 0 {
		return weighted.Option{}, ErrNoPrizes
	}

	prize, err := weighted.Pick(event.PrizeOptions())
	if err != nil {
		return weighted.Option{}, fmt.Errorf("draw failed: %w", err)
	}

	slog.Info("Event draw performed", "eventId", event.ID, "type", event.Type, "prize", prize.Label)
	return prize, nil
}

func (s *EventServiceImpl) CreateEvent(ctx context.Context, event *models.Event) error {
	if !models.ValidEventType(event.Type) {
		return ErrInvalidEventType
	}
	if event.Status == "" {
		event.Status = models.EventStatusActive
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		slog.Error("Failed to create event", "error", err)
		return fmt.Errorf("failed to create event: %w", err)
	}
	slog.Info("Event created", "eventId", event.ID, "type", event.Type, "title", event.Title)
	return nil
}

// UpdateEvent replaces the stored event, carrying CreatedAt over from
// the stored record.
func (s *EventServiceImpl) UpdateEvent(ctx context.Context, event *models.Event) error {
	if !models.ValidEventType(event.Type) {
		return ErrInvalidEventType
	}
	existing, err := s.eventRepo.FindByID(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("event not found: %w", err)
	}
	event.CreatedAt = existing.CreatedAt
	return s.eventRepo.Update(ctx, event)
}

func (s *EventServiceImpl) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	return s.eventRepo.Delete(ctx, id)
}
