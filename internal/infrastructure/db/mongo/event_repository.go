package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ticketly/ticketing-system/internal/core/domain"
	"github.com/ticketly/ticketing-system/internal/core/ports"
)

const eventsCollection = "events"

// EventRepository implements ports.EventRepository on MongoDB. The event id
// is stored as the document _id, so the collection behaves as an ordered
// key-value map over event ids.
type EventRepository struct {
	coll *mongo.Collection
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) ports.EventRepository {
	return &EventRepository{coll: db.Collection(eventsCollection)}
}

func (r *EventRepository) Insert(ctx context.Context, event *domain.Event) error {
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, eventID string) (*domain.Event, error) {
	var event domain.Event
	if err := r.coll.FindOne(ctx, bson.M{"_id": eventID}).Decode(&event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &event, nil
}

// List returns every event sorted ascending by _id. This is key order, not
// creation order; callers must not read it as chronological.
func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cursor.Close(ctx)

	events := make([]*domain.Event, 0)
	for cursor.Next(ctx) {
		var event domain.Event
		if err := cursor.Decode(&event); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, &event)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
