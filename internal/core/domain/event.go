package domain

import (
	"errors"
	"time"
)

var ErrEventNotFound = errors.New("event not found")
var ErrEventExpired = errors.New("event has already passed")
var ErrInvalidEvent = errors.New("invalid event")

// Coordinates represents a geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Event is an organizer-created happening tickets are sold against.
// Events are immutable once created: there is no update or delete path, so a
// record read back is always exactly what the creation call returned.
type Event struct {
	EventID     string      `json:"event_id" bson:"_id"`
	Title       string      `json:"title" bson:"title"`
	Description string      `json:"description" bson:"description"`
	Location    Coordinates `json:"location" bson:"location"`
	Datetime    time.Time   `json:"datetime" bson:"datetime"`
	TicketPrice float64     `json:"ticket_price" bson:"ticket_price"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}

// Purchasable reports whether a ticket may still be issued for the event at
// the given instant. The comparison is strict: a purchase at the exact event
// datetime is allowed.
func (e *Event) Purchasable(now time.Time) bool {
	return !e.Datetime.Before(now)
}
