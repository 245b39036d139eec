package registry

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"scrapcar-backend/internal/domain/vehicle"
)

// Cached memoizes successful registry responses in redis, keyed by the
// normalized registration. A vehicle's attributes don't change between
// quotes, so a re-lookup after a collected or rejected quote can skip the
// external call. Quota accounting is unaffected: the charge is per new
// quote, not per registry round-trip.
type Cached struct {
	next vehicle.Registry
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCached(next vehicle.Registry, rdb *redis.Client, ttl time.Duration) *Cached {
	return &Cached{next: next, rdb: rdb, ttl: ttl}
}

func cacheKey(registration string) string { return "vreg:" + registration }

func (c *Cached) Lookup(ctx context.Context, registration string) (*vehicle.Attributes, error) {
	if b, err := c.rdb.Get(ctx, cacheKey(registration)).Bytes(); err == nil {
		var attrs vehicle.Attributes
		if err := json.Unmarshal(b, &attrs); err == nil {
			return &attrs, nil
		}
	} else if err != redis.Nil {
		log.Printf("registry cache read failed for %s: %v", registration, err)
	}

	attrs, err := c.next.Lookup(ctx, registration)
	if err != nil {
		// errors are not cached; ErrUnavailable may clear on retry
		return nil, err
	}

	if b, err := json.Marshal(attrs); err == nil {
		if err := c.rdb.Set(ctx, cacheKey(registration), b, c.ttl).Err(); err != nil {
			log.Printf("registry cache write failed for %s: %v", registration, err)
		}
	}
	return attrs, nil
}
