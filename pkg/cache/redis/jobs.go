package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/artem13815/jobmatch/pkg/job"
)

const activeJobsKey = "jobmatch:jobs:active"

// NewClient parses redisURL and verifies connectivity.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// JobCache implements job.Cache on top of a Redis string key.
type JobCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewJobCache(rdb *redis.Client, ttl time.Duration) *JobCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &JobCache{rdb: rdb, ttl: ttl}
}

func (c *JobCache) GetActive(ctx context.Context) ([]job.Offer, bool) {
	raw, err := c.rdb.Get(ctx, activeJobsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[cache] get %s: %v", activeJobsKey, err)
		}
		return nil, false
	}
	var offers []job.Offer
	if err := json.Unmarshal(raw, &offers); err != nil {
		log.Printf("[cache] decode %s: %v", activeJobsKey, err)
		return nil, false
	}
	return offers, true
}

func (c *JobCache) SetActive(ctx context.Context, offers []job.Offer) {
	raw, err := json.Marshal(offers)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, activeJobsKey, raw, c.ttl).Err(); err != nil {
		log.Printf("[cache] set %s: %v", activeJobsKey, err)
	}
}

func (c *JobCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, activeJobsKey).Err(); err != nil {
		log.Printf("[cache] del %s: %v", activeJobsKey, err)
	}
}
