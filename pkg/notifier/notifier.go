package notifier

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/voicelane/trialwatch/pkg/email"
	"github.com/voicelane/trialwatch/pkg/logger"
	"github.com/voicelane/trialwatch/pkg/subscription"
)

// Dispatcher is the notification surface the batch needs. *email.Dispatcher
// satisfies it; tests supply mocks.
type Dispatcher interface {
	SendTrialExpiring(ctx context.Context, to email.Recipient, daysLeft int, trialEndsAt time.Time) error
	SendTrialExpired(ctx context.Context, to email.Recipient) error
}

// Notifier runs the trial lifecycle batch: it scans trialing subscriptions,
// sends the 7/3/1-day warnings, and expires lapsed trials. It holds no state
// between invocations; everything durable lives in the subscription store.
type Notifier struct {
	store       subscription.Store
	dispatcher  Dispatcher
	log         *slog.Logger
	bucketLog   BucketLog
	concurrency int
	sendTimeout time.Duration
}

// New creates a Notifier. Panics if store or dispatcher is nil to fail fast
// during initialization.
func New(store subscription.Store, dispatcher Dispatcher, opts ...Option) *Notifier {
	if store == nil {
		panic("notifier: subscription.Store is required")
	}
	if dispatcher == nil {
		panic("notifier: Dispatcher is required")
	}

	n := &Notifier{
		store:       store,
		dispatcher:  dispatcher,
		log:         slog.New(slog.DiscardHandler),
		concurrency: 1,
		sendTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Run executes one batch invocation at the given wall-clock time. The time is
// injected so classification is testable without touching real clocks.
//
// A failure of the initial listing query aborts the invocation with a nil
// Results. Any later failure is scoped to its subscription: it is appended to
// Results.Errors and the batch continues. Context cancellation stops the loop
// and returns the partial results collected so far along with the context
// error.
func (n *Notifier) Run(ctx context.Context, now time.Time) (*Results, error) {
	subs, err := n.store.ListTrialingWithOwner(ctx)
	if err != nil {
		return nil, errors.Join(ErrListingFailed, err)
	}

	results := newResults()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n.concurrency)

	for _, rec := range subs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			n.process(gctx, results, rec, now)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		n.log.WarnContext(ctx, "trial lifecycle batch interrupted",
			slog.Int("processed", results.Total), logger.Error(err))
		return results, err
	}

	n.log.InfoContext(ctx, "trial lifecycle batch complete",
		slog.Int("total", results.Total),
		slog.Int("day7", results.Day7),
		slog.Int("day3", results.Day3),
		slog.Int("day1", results.Day1),
		slog.Int("expired", results.Expired),
		slog.Int("failed", len(results.Errors)))

	return results, nil
}

// process handles exactly one subscription: classify, then perform at most
// one send and, on the expired path, the status transition.
func (n *Notifier) process(ctx context.Context, results *Results, rec subscription.OwnedSubscription, now time.Time) {
	sub := rec.Subscription
	results.scanned()

	// Data-integrity gaps are skipped, not failed: there is nothing
	// actionable for a trialing subscription without a trial end or a
	// reachable owner.
	if sub.TrialEndsAt == nil {
		n.log.WarnContext(ctx, "trialing subscription without trial end, skipping",
			logger.SubscriptionID(sub.ID))
		return
	}
	if rec.Owner.Email == "" {
		n.log.WarnContext(ctx, "trialing subscription owner has no email, skipping",
			logger.SubscriptionID(sub.ID))
		return
	}

	bucket := Classify(sub.TrialDaysUntilExpiryAt(now))
	recipient := email.Recipient{Name: rec.Owner.Name, Email: rec.Owner.Email}

	switch {
	case bucket == BucketExpired:
		n.expire(ctx, results, sub, recipient)
	case bucket.IsWarning():
		n.warn(ctx, results, sub, recipient, bucket)
	}
}

// expire sends the trial-expired email and then flips the status. The status
// write happens regardless of the send outcome: a failed email must not leave
// a lapsed trial billed as trialing. Send failures are recorded separately.
func (n *Notifier) expire(ctx context.Context, results *Results, sub subscription.Subscription, to email.Recipient) {
	sendCtx, cancel := context.WithTimeout(ctx, n.sendTimeout)
	sendErr := n.dispatcher.SendTrialExpired(sendCtx, to)
	cancel()
	if sendErr != nil {
		n.log.ErrorContext(ctx, "failed to send trial expired email",
			logger.SubscriptionID(sub.ID), logger.Error(sendErr))
		results.fail(sub.ID, sendErr)
	}

	if err := n.store.MarkExpired(ctx, sub.ID); err != nil {
		n.log.ErrorContext(ctx, "failed to mark subscription expired",
			logger.SubscriptionID(sub.ID), logger.Error(err))
		results.fail(sub.ID, err)
		return
	}
	results.expired()
}

// warn sends the N-days-left reminder. When a bucket log is configured the
// send is skipped if this bucket was already dispatched for the current trial
// window; a bucket log failure falls open to sending, since a duplicate
// reminder beats a missed one.
func (n *Notifier) warn(ctx context.Context, results *Results, sub subscription.Subscription, to email.Recipient, bucket Bucket) {
	if n.bucketLog != nil {
		first, err := n.bucketLog.MarkSent(ctx, sub.ID, bucket, *sub.TrialEndsAt)
		if err != nil {
			n.log.WarnContext(ctx, "bucket log unavailable, sending anyway",
				logger.SubscriptionID(sub.ID), logger.Bucket(string(bucket)), logger.Error(err))
		} else if !first {
			n.log.DebugContext(ctx, "warning already sent for bucket, skipping",
				logger.SubscriptionID(sub.ID), logger.Bucket(string(bucket)))
			return
		}
	}

	sendCtx, cancel := context.WithTimeout(ctx, n.sendTimeout)
	err := n.dispatcher.SendTrialExpiring(sendCtx, to, bucket.DaysLeft(), *sub.TrialEndsAt)
	cancel()
	if err != nil {
		n.log.ErrorContext(ctx, "failed to send trial expiring email",
			logger.SubscriptionID(sub.ID), logger.Bucket(string(bucket)), logger.Error(err))
		results.fail(sub.ID, err)
		return
	}
	results.warned(bucket)
}
