package ports

import (
	"context"

	"github.com/ticketly/ticketing-system/internal/core/domain"
)

// TicketService defines the issuance workflow and ticket reads.
type TicketService interface {
	// PurchaseTicket issues a ticket against the referenced event, copying
	// the event's price and datetime into the ticket at this instant.
	// Fails with domain.ErrEventNotFound when the event is absent and with
	// domain.ErrEventExpired when the event datetime is already past.
	PurchaseTicket(ctx context.Context, eventID string) (*domain.Ticket, error)
	GetTicket(ctx context.Context, ticketID string) (*domain.Ticket, error)
}
