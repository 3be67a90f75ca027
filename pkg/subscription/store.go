package subscription

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the persistence surface the trial lifecycle batch needs.
// Everything else about subscriptions (creation, plan changes, billing state)
// is owned elsewhere; this interface deliberately exposes only a narrow read
// and one idempotent status transition.
type Store interface {
	// ListTrialingWithOwner returns all subscriptions currently in trialing
	// status, each paired with its organization owner's name and email.
	ListTrialingWithOwner(ctx context.Context) ([]OwnedSubscription, error)

	// MarkExpired transitions a subscription from trialing to expired.
	// The update is conditional on the current status, so concurrent or
	// repeated invocations are safe: once the subscription has left trialing
	// the call is a no-op and returns nil.
	MarkExpired(ctx context.Context, id uuid.UUID) error
}
