package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// BucketLog records which warning bucket was last dispatched for a
// subscription, so re-running the batch within the same day does not repeat a
// warning. It is deliberately optional: without one the notifier reproduces
// the at-least-once semantics of the original job. The expired path never
// consults the log because the status transition itself is the guard.
type BucketLog interface {
	// MarkSent records that the given bucket was dispatched for the
	// subscription's current trial window. Returns false when an identical
	// record already exists, meaning the send should be skipped.
	MarkSent(ctx context.Context, id uuid.UUID, bucket Bucket, trialEndsAt time.Time) (bool, error)
}

func bucketKey(id uuid.UUID, bucket Bucket, trialEndsAt time.Time) string {
	// Trial end is part of the key so an extended trial can receive the same
	// warning again for its new window.
	return fmt.Sprintf("trialwatch:notified:%s:%s:%d", id, bucket, trialEndsAt.Unix())
}

// MemBucketLog is an in-memory BucketLog for tests and single-process runs.
type MemBucketLog struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewMemBucketLog() *MemBucketLog {
	return &MemBucketLog{seen: make(map[string]struct{})}
}

func (l *MemBucketLog) MarkSent(ctx context.Context, id uuid.UUID, bucket Bucket, trialEndsAt time.Time) (bool, error) {
	key := bucketKey(id, bucket, trialEndsAt)

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.seen[key]; ok {
		return false, nil
	}
	l.seen[key] = struct{}{}
	return true, nil
}
