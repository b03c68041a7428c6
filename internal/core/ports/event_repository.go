package ports

import (
	"context"

	"github.com/ticketly/ticketing-system/internal/core/domain"
)

// EventRepository defines persistence operations for events, backed by an
// ordered key-value store keyed by event id.
type EventRepository interface {
	Insert(ctx context.Context, event *domain.Event) error
	// FindByID returns domain.ErrEventNotFound when the id is absent.
	FindByID(ctx context.Context, eventID string) (*domain.Event, error)
	// List enumerates all events in ascending key (event id) order.
	List(ctx context.Context) ([]*domain.Event, error)
}
