package ports

import (
	"context"

	"github.com/ticketly/ticketing-system/internal/core/domain"
)

// TicketRepository defines persistence operations for tickets. Insertion is
// reachable only through the issuance workflow; there is no standalone write
// endpoint.
type TicketRepository interface {
	Insert(ctx context.Context, ticket *domain.Ticket) error
	// FindByID returns domain.ErrTicketNotFound when the id is absent.
	FindByID(ctx context.Context, ticketID string) (*domain.Ticket, error)
}
