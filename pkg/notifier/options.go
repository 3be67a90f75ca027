package notifier

import (
	"log/slog"
	"time"
)

// Option configures a Notifier.
type Option func(*Notifier)

// WithLogger supplies a structured logger. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(n *Notifier) {
		if log != nil {
			n.log = log
		}
	}
}

// WithConcurrency enables bounded parallel processing of subscriptions.
// Subscriptions are independent, so order does not matter; the Results
// accumulator is already safe for concurrent use. Values below 1 are ignored.
func WithConcurrency(workers int) Option {
	return func(n *Notifier) {
		if workers > 0 {
			n.concurrency = workers
		}
	}
}

// WithSendTimeout bounds each email send so one slow provider call cannot
// hang the whole batch. A timeout counts as that subscription's failure, not
// the batch's. Defaults to 5s.
func WithSendTimeout(d time.Duration) Option {
	return func(n *Notifier) {
		if d > 0 {
			n.sendTimeout = d
		}
	}
}

// WithBucketLog enables warning deduplication across invocations. Without it
// the batch keeps the original at-least-once behavior: running twice on the
// same day repeats that day's warnings.
func WithBucketLog(log BucketLog) Option {
	return func(n *Notifier) {
		n.bucketLog = log
	}
}
