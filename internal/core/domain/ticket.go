package domain

import (
	"errors"
	"time"
)

var ErrTicketNotFound = errors.New("ticket not found")

// Ticket is a purchase receipt. TicketPrice and ExpiresAt are copied from the
// referenced event at issuance time, so the ticket stays a self-contained
// record regardless of what happens to the event afterwards. A ticket has no
// lifecycle: once issued it is final.
type Ticket struct {
	TicketID    string    `json:"ticket_id" bson:"_id"`
	EventID     string    `json:"event_id" bson:"event_id"`
	TicketPrice float64   `json:"ticket_price" bson:"ticket_price"`
	ExpiresAt   time.Time `json:"expires_at" bson:"expires_at"`
}
