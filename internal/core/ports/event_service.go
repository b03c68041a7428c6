package ports

import (
	"context"
	"time"

	"github.com/ticketly/ticketing-system/internal/core/domain"
)

// CoordinatesInput holds geographic coordinates.
type CoordinatesInput struct {
	Latitude  float64
	Longitude float64
}

// CreateEventInput carries all caller-supplied data needed to create an
// event. EventID and CreatedAt are server-assigned, never accepted from the
// caller.
type CreateEventInput struct {
	Title       string
	Description string
	Location    CoordinatesInput
	Datetime    time.Time
	TicketPrice float64
}

// EventService defines use-case operations for events.
type EventService interface {
	CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error)
	GetEvent(ctx context.Context, eventID string) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]*domain.Event, error)
}
