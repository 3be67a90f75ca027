package notifier

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// redisBucketLogTTL keeps dedup keys long enough to cover overlapping or
// repeated scheduler runs within a day, with margin for clock drift.
const redisBucketLogTTL = 48 * time.Hour

// RedisBucketLog is a Redis-backed BucketLog shared across process instances.
// SETNX gives the required record-if-absent atomicity.
type RedisBucketLog struct {
	client *redis.Client
}

// NewRedisBucketLog creates a BucketLog on top of a connected Redis client.
// Panics on a nil client to fail fast during initialization.
func NewRedisBucketLog(client *redis.Client) *RedisBucketLog {
	if client == nil {
		panic("notifier: redis client is required")
	}
	return &RedisBucketLog{client: client}
}

func (l *RedisBucketLog) MarkSent(ctx context.Context, id uuid.UUID, bucket Bucket, trialEndsAt time.Time) (bool, error) {
	ok, err := l.client.SetNX(ctx, bucketKey(id, bucket, trialEndsAt), 1, redisBucketLogTTL).Result()
	if err != nil {
		return false, errors.Join(ErrBucketLogUnavailable, err)
	}
	return ok, nil
}
