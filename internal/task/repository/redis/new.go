package redis

import (
	"fmt"
	"time"

	"taskmint/internal/model"
	"taskmint/internal/task/repository"
	"taskmint/pkg/log"
	pkgRedis "taskmint/pkg/redis"
)

// DefaultTTL is used when the configured TTL is not positive.
const DefaultTTL = 5 * time.Minute

const keyPrefix = "analytics"

type implCache struct {
	client pkgRedis.IRedis
	ttl    time.Duration
	l      log.Logger
}

// New creates an analytics report cache backed by Redis.
func New(client pkgRedis.IRedis, ttl time.Duration, l log.Logger) repository.AnalyticsCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implCache{client: client, ttl: ttl, l: l}
}

func (c *implCache) genKey(owner model.Owner) string {
	return fmt.Sprintf("%s:gen:%s:%s", keyPrefix, owner.UserType, owner.UserID)
}

func (c *implCache) reportKey(key repository.ReportKey) string {
	return fmt.Sprintf("%s:%s:%s:%s:%d", keyPrefix, key.Owner.UserType, key.Owner.UserID, key.Period, key.Generation)
}

func (c *implCache) dsn(method string) string {
	return fmt.Sprintf("task/repository/redis.%s", method)
}
