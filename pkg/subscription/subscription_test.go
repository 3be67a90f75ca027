package subscription_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/voicelane/trialwatch/pkg/subscription"
)

func trialingSub(endsAt time.Time) subscription.Subscription {
	return subscription.Subscription{
		ID:          uuid.New(),
		Status:      subscription.StatusTrialing,
		TrialEndsAt: &endsAt,
	}
}

func TestTrialDaysUntilExpiryAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		trialEndsAt time.Time
		want        int
	}{
		{"exactly 7 days", now.Add(7 * 24 * time.Hour), 7},
		{"exactly 3 days", now.Add(3 * 24 * time.Hour), 3},
		{"exactly 1 day", now.Add(24 * time.Hour), 1},
		{"30 minutes left rounds up to 1", now.Add(30 * time.Minute), 1},
		{"6 days 1 hour rounds up to 7", now.Add(6*24*time.Hour + time.Hour), 7},
		{"exactly now", now, 0},
		{"12 hours past", now.Add(-12 * time.Hour), 0},
		{"two days past", now.Add(-48 * time.Hour), -2},
		{"far in the future", now.Add(30 * 24 * time.Hour), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sub := trialingSub(tt.trialEndsAt)
			assert.Equal(t, tt.want, sub.TrialDaysUntilExpiryAt(now))
		})
	}

	t.Run("nil trial end", func(t *testing.T) {
		t.Parallel()

		sub := subscription.Subscription{Status: subscription.StatusTrialing}
		assert.Equal(t, 0, sub.TrialDaysUntilExpiryAt(now))
	})
}

func TestTrialDaysRemainingAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("clamped at zero after expiry", func(t *testing.T) {
		t.Parallel()

		sub := trialingSub(now.Add(-72 * time.Hour))
		assert.Equal(t, 0, sub.TrialDaysRemainingAt(now))
	})

	t.Run("zero for non-trialing status", func(t *testing.T) {
		t.Parallel()

		endsAt := now.Add(5 * 24 * time.Hour)
		sub := subscription.Subscription{Status: subscription.StatusActive, TrialEndsAt: &endsAt}
		assert.Equal(t, 0, sub.TrialDaysRemainingAt(now))
	})
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	sub := subscription.Subscription{Status: subscription.StatusTrialing}
	assert.True(t, sub.IsTrialing())
	assert.False(t, sub.IsActive())
	assert.False(t, sub.IsExpired())

	sub.Status = subscription.StatusExpired
	assert.True(t, sub.IsExpired())
	assert.False(t, sub.IsTrialing())
}
