package viewguard

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Guard decides whether a view of a form during one visit should be counted.
type Guard interface {
	First(ctx context.Context, formID, visitID string) (bool, error)
}

// Redis remembers (form, visit) pairs for ttl using SET NX.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

// First reports true the first time a visit sees a form. Views without a
// visit id are always counted.
func (g *Redis) First(ctx context.Context, formID, visitID string) (bool, error) {
	if visitID == "" {
		return true, nil
	}
	return g.rdb.SetNX(ctx, key(formID, visitID), 1, g.ttl).Result()
}

func key(formID, visitID string) string {
	return "form:view:" + formID + ":" + visitID
}

// Noop counts every view.
type Noop struct{}

func (Noop) First(context.Context, string, string) (bool, error) { return true, nil }
