package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ticketly/ticketing-system/internal/core/domain"
	"github.com/ticketly/ticketing-system/internal/core/ports"
)

const defaultCacheTTL = 5 * time.Minute

// CachedEventFinder decorates an EventRepository with a Redis read-through
// cache for the issuance hot path. Events are immutable after creation, so a
// cached copy can never go stale; the TTL only bounds memory. Cache failures
// are logged and the store remains the authority, so Redis being down slows
// purchases rather than failing them. Negative results are never cached.
type CachedEventFinder struct {
	repo   ports.EventRepository
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewCachedEventFinder wraps repo with a Redis cache. If ttl <= 0 a default
// of five minutes is applied.
func NewCachedEventFinder(repo ports.EventRepository, client *redis.Client, ttl time.Duration, log zerolog.Logger) *CachedEventFinder {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedEventFinder{repo: repo, client: client, ttl: ttl, log: log}
}

func (c *CachedEventFinder) FindByID(ctx context.Context, eventID string) (*domain.Event, error) {
	key := c.key(eventID)

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var event domain.Event
		if err := json.Unmarshal(raw, &event); err == nil {
			return &event, nil
		}
		// corrupt entry: fall through to the store and rewrite
		c.log.Warn().Str("event_id", eventID).Msg("dropping undecodable cached event")
	} else if err != redis.Nil {
		c.log.Warn().Err(err).Str("event_id", eventID).Msg("event cache read failed, using store")
	}

	event, err := c.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(event); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("event_id", eventID).Msg("failed to cache event")
		}
	}

	return event, nil
}

func (c *CachedEventFinder) key(eventID string) string {
	return fmt.Sprintf("event:%s", eventID)
}
