package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ticketly/ticketing-system/internal/clock"
	"github.com/ticketly/ticketing-system/internal/core/domain"
	"github.com/ticketly/ticketing-system/internal/core/ports"
)

type stubEventRepo struct {
	events map[string]*domain.Event
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[string]*domain.Event)}
}

func (r *stubEventRepo) Insert(_ context.Context, event *domain.Event) error {
	clone := *event
	r.events[event.EventID] = &clone
	return nil
}

func (r *stubEventRepo) FindByID(_ context.Context, eventID string) (*domain.Event, error) {
	e, ok := r.events[eventID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEventRepo) List(_ context.Context) ([]*domain.Event, error) {
	ids := make([]string, 0, len(r.events))
	for id := range r.events {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*domain.Event, 0, len(ids))
	for _, id := range ids {
		clone := *r.events[id]
		out = append(out, &clone)
	}
	return out, nil
}

func validInput() ports.CreateEventInput {
	return ports.CreateEventInput{
		Title:       "Gig",
		Description: "A small venue gig",
		Location:    ports.CoordinatesInput{Latitude: 40.4168, Longitude: -3.7038},
		Datetime:    time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC),
		TicketPrice: 20,
	}
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	repo := newStubEventRepo()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := NewEventService(repo, clock.NewFixed(now), zerolog.Nop())

	event, err := svc.CreateEvent(context.Background(), validInput())
	if err != nil {
		t.Fatalf("CreateEvent returned error: %v", err)
	}
	if event.EventID == "" {
		t.Fatalf("expected server-assigned event id")
	}
	if !event.CreatedAt.Equal(now) {
		t.Fatalf("expected createdAt %v, got %v", now, event.CreatedAt)
	}
	if event.TicketPrice != 20 {
		t.Fatalf("expected price 20, got %v", event.TicketPrice)
	}

	stored, err := repo.FindByID(context.Background(), event.EventID)
	if err != nil {
		t.Fatalf("event not persisted: %v", err)
	}
	if stored.Title != "Gig" || stored.Location.Latitude != 40.4168 {
		t.Fatalf("stored event does not match input: %+v", stored)
	}
}

func TestEventService_CreateEvent_FreshIDs(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewEventService(repo, nil, zerolog.Nop())

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		event, err := svc.CreateEvent(context.Background(), validInput())
		if err != nil {
			t.Fatalf("CreateEvent returned error: %v", err)
		}
		if seen[event.EventID] {
			t.Fatalf("event id %s issued twice", event.EventID)
		}
		seen[event.EventID] = true
	}
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewEventService(repo, nil, zerolog.Nop())

	cases := map[string]func(*ports.CreateEventInput){
		"missing title":       func(in *ports.CreateEventInput) { in.Title = "" },
		"missing description": func(in *ports.CreateEventInput) { in.Description = "" },
		"missing datetime":    func(in *ports.CreateEventInput) { in.Datetime = time.Time{} },
		"negative price":      func(in *ports.CreateEventInput) { in.TicketPrice = -1 },
	}

	for name, mutate := range cases {
		in := validInput()
		mutate(&in)
		if _, err := svc.CreateEvent(context.Background(), in); err != domain.ErrInvalidEvent {
			t.Fatalf("%s: expected ErrInvalidEvent, got %v", name, err)
		}
	}
	if len(repo.events) != 0 {
		t.Fatalf("rejected input must not be persisted")
	}
}

func TestEventService_GetEvent_NotFound(t *testing.T) {
	svc := NewEventService(newStubEventRepo(), nil, zerolog.Nop())

	if _, err := svc.GetEvent(context.Background(), "missing"); err != domain.ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventService_ListEvents_KeyOrder(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewEventService(repo, nil, zerolog.Nop())

	for i := 0; i < 5; i++ {
		if _, err := svc.CreateEvent(context.Background(), validInput()); err != nil {
			t.Fatalf("CreateEvent returned error: %v", err)
		}
	}

	events, err := svc.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents returned error: %v", err)
	}
	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i-1].EventID >= events[i].EventID {
			t.Fatalf("events not in ascending id order: %s before %s", events[i-1].EventID, events[i].EventID)
		}
	}
}
