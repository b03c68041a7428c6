package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ticketly/ticketing-system/internal/clock"
	"github.com/ticketly/ticketing-system/internal/core/domain"
	"github.com/ticketly/ticketing-system/internal/core/ports"
)

type eventService struct {
	repo  ports.EventRepository
	clock clock.Clock
	log   zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(repo ports.EventRepository, clk clock.Clock, log zerolog.Logger) ports.EventService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &eventService{repo: repo, clock: clk, log: log}
}

// CreateEvent validates the caller-supplied fields, assigns a fresh id and
// creation timestamp, and persists the record. Every stored field is set
// explicitly here; nothing from the request body is carried over unchecked.
func (s *eventService) CreateEvent(ctx context.Context, input ports.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" || input.Description == "" {
		return nil, domain.ErrInvalidEvent
	}
	if input.Datetime.IsZero() {
		return nil, domain.ErrInvalidEvent
	}
	if input.TicketPrice < 0 {
		return nil, domain.ErrInvalidEvent
	}

	event := &domain.Event{
		EventID:     uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Location: domain.Coordinates{
			Latitude:  input.Location.Latitude,
			Longitude: input.Location.Longitude,
		},
		Datetime:    input.Datetime.UTC(),
		TicketPrice: input.TicketPrice,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		s.log.Error().Err(err).Msg("failed to create event")
		return nil, err
	}

	s.log.Info().Str("event_id", event.EventID).Str("title", event.Title).Msg("event created")
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	return s.repo.FindByID(ctx, eventID)
}

// ListEvents returns all events in store key order (ascending event id), not
// creation order.
func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}
