package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"taskmint/internal/model"
	"taskmint/internal/task/analytics"
	"taskmint/internal/task/repository"
	pkgRedis "taskmint/pkg/redis"
)

// Generation reads the owner's counter. A missing counter is generation 0.
func (c *implCache) Generation(ctx context.Context, owner model.Owner) (int64, bool) {
	b, err := c.client.Get(ctx, c.genKey(owner))
	if errors.Is(err, pkgRedis.ErrCacheMiss) {
		return 0, true
	}
	if err != nil {
		c.l.Warnf(ctx, "%s: %v", c.dsn("Generation"), err)
		return 0, false
	}

	gen, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		c.l.Warnf(ctx, "%s parse: %v", c.dsn("Generation"), err)
		return 0, false
	}
	return gen, true
}

// GetReport returns the cached report. Any failure is treated as a miss.
func (c *implCache) GetReport(ctx context.Context, key repository.ReportKey) (analytics.Report, bool) {
	b, err := c.client.Get(ctx, c.reportKey(key))
	if errors.Is(err, pkgRedis.ErrCacheMiss) {
		return analytics.Report{}, false
	}
	if err != nil {
		c.l.Warnf(ctx, "%s: %v", c.dsn("GetReport"), err)
		return analytics.Report{}, false
	}

	var report analytics.Report
	if err := json.Unmarshal(b, &report); err != nil {
		c.l.Warnf(ctx, "%s decode: %v", c.dsn("GetReport"), err)
		return analytics.Report{}, false
	}
	return report, true
}

func (c *implCache) SetReport(ctx context.Context, key repository.ReportKey, report analytics.Report) {
	b, err := json.Marshal(report)
	if err != nil {
		c.l.Warnf(ctx, "%s encode: %v", c.dsn("SetReport"), err)
		return
	}
	if err := c.client.Set(ctx, c.reportKey(key), b, c.ttl); err != nil {
		c.l.Warnf(ctx, "%s: %v", c.dsn("SetReport"), err)
	}
}

// Invalidate advances the owner's generation. Reports under older
// generations are left to expire.
func (c *implCache) Invalidate(ctx context.Context, owner model.Owner) {
	if _, err := c.client.Incr(ctx, c.genKey(owner)); err != nil {
		c.l.Warnf(ctx, "%s: %v", c.dsn("Invalidate"), err)
	}
}
