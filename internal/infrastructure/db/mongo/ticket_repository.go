package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ticketly/ticketing-system/internal/core/domain"
	"github.com/ticketly/ticketing-system/internal/core/ports"
)

const ticketsCollection = "tickets"

// TicketRepository implements ports.TicketRepository on MongoDB, keyed by
// ticket id as the document _id.
type TicketRepository struct {
	coll *mongo.Collection
}

// NewTicketRepository creates a new TicketRepository.
func NewTicketRepository(db *mongo.Database) ports.TicketRepository {
	return &TicketRepository{coll: db.Collection(ticketsCollection)}
}

func (r *TicketRepository) Insert(ctx context.Context, ticket *domain.Ticket) error {
	if _, err := r.coll.InsertOne(ctx, ticket); err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := r.coll.FindOne(ctx, bson.M{"_id": ticketID}).Decode(&ticket); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("find ticket: %w", err)
	}
	return &ticket, nil
}
