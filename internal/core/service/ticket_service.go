package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ticketly/ticketing-system/internal/clock"
	"github.com/ticketly/ticketing-system/internal/core/domain"
	"github.com/ticketly/ticketing-system/internal/core/ports"
)

// EventFinder abstracts the event lookup used during issuance. The cached
// decorator in infrastructure/db/redis satisfies it, as does the plain
// repository.
type EventFinder interface {
	FindByID(ctx context.Context, eventID string) (*domain.Event, error)
}

type ticketService struct {
	events  EventFinder
	tickets ports.TicketRepository
	clock   clock.Clock
	log     zerolog.Logger
}

// NewTicketService returns a TicketService implementation.
func NewTicketService(events EventFinder, tickets ports.TicketRepository, clk clock.Clock, log zerolog.Logger) ports.TicketService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &ticketService{events: events, tickets: tickets, clock: clk, log: log}
}

// PurchaseTicket runs the issuance workflow: look the event up, check it is
// still purchasable, snapshot its price and datetime into a new ticket, and
// insert. The lookup and the insert are two separate store calls with no
// transaction between them; two simultaneous purchases both succeed (issuance
// is not capacity-limited) and a failed insert after validation fails only
// this request.
func (s *ticketService) PurchaseTicket(ctx context.Context, eventID string) (*domain.Ticket, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.Purchasable(s.clock.Now()) {
		s.log.Debug().Str("event_id", eventID).Time("datetime", event.Datetime).Msg("purchase rejected, event passed")
		return nil, domain.ErrEventExpired
	}

	ticket := &domain.Ticket{
		TicketID:    uuid.NewString(),
		EventID:     event.EventID,
		TicketPrice: event.TicketPrice,
		ExpiresAt:   event.Datetime,
	}

	if err := s.tickets.Insert(ctx, ticket); err != nil {
		s.log.Error().Err(err).Str("event_id", eventID).Msg("failed to insert ticket")
		return nil, err
	}

	s.log.Info().
		Str("ticket_id", ticket.TicketID).
		Str("event_id", ticket.EventID).
		Float64("price", ticket.TicketPrice).
		Msg("ticket issued")

	return ticket, nil
}

func (s *ticketService) GetTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	return s.tickets.FindByID(ctx, ticketID)
}
