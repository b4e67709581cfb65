// Package availabilitycache keeps short-lived copies of per-date seat
// availability in Redis. The cache is advisory: booking commits never
// read it, they recount inside the transaction. A miss or a Redis
// failure simply falls through to the database.
package availabilitycache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/studiofit/booking-service/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

func New(client *redis.Client, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func key(slotID string, date time.Time) string {
	return fmt.Sprintf("availability:%s:%s", slotID, date.Format(domain.DateFormat))
}

// Get returns the cached availability, or (nil, false) on miss or error.
func (c *Cache) Get(ctx context.Context, slotID string, date time.Time) (*domain.Availability, bool) {
	raw, err := c.client.Get(ctx, key(slotID, date)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("[AvailabilityCache] Get - redis error for slot %s: %v", slotID, err)
		return nil, false
	}

	var availability domain.Availability
	if err := json.Unmarshal(raw, &availability); err != nil {
		c.logger.Warn("[AvailabilityCache] Get - corrupt entry for slot %s: %v", slotID, err)
		return nil, false
	}

	return &availability, true
}

func (c *Cache) Set(ctx context.Context, availability *domain.Availability) {
	raw, err := json.Marshal(availability)
	if err != nil {
		c.logger.Error("[AvailabilityCache] Set - marshal failed for slot %s: %v", availability.TimeSlotID, err)
		return
	}

	if err := c.client.Set(ctx, key(availability.TimeSlotID, availability.Date), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("[AvailabilityCache] Set - redis error for slot %s: %v", availability.TimeSlotID, err)
	}
}

// Invalidate drops the entry for a slot/date pair after a booking mutation.
func (c *Cache) Invalidate(ctx context.Context, slotID string, date time.Time) {
	if err := c.client.Del(ctx, key(slotID, date)).Err(); err != nil {
		c.logger.Warn("[AvailabilityCache] Invalidate - redis error for slot %s: %v", slotID, err)
	}
}
