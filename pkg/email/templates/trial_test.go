package templates_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicelane/trialwatch/pkg/email/templates"
)

func TestTrialExpiring(t *testing.T) {
	t.Parallel()

	html, err := templates.Render(context.Background(), templates.TrialExpiring(templates.TrialExpiringParams{
		Name:        "Ada",
		DaysLeft:    3,
		TrialEndsAt: time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
		UpgradeURL:  "https://app.example.com/billing",
	}))
	require.NoError(t, err)

	assert.Contains(t, html, "Hi Ada")
	assert.Contains(t, html, "3 days")
	assert.Contains(t, html, "January 4, 2025")
	assert.Contains(t, html, "https://app.example.com/billing")
}

func TestTrialExpired(t *testing.T) {
	t.Parallel()

	html, err := templates.Render(context.Background(), templates.TrialExpired(templates.TrialExpiredParams{
		Name:       "Ada",
		UpgradeURL: "https://app.example.com/billing",
	}))
	require.NoError(t, err)

	assert.Contains(t, html, "Your trial has ended")
	assert.Contains(t, html, "https://app.example.com/billing")
}

func TestWelcome(t *testing.T) {
	t.Parallel()

	t.Run("renders trial end date", func(t *testing.T) {
		t.Parallel()

		html, err := templates.Render(context.Background(), templates.Welcome(templates.WelcomeParams{
			Name:        "Ada",
			TrialEndsAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			LoginURL:    "https://app.example.com/login",
		}))
		require.NoError(t, err)

		assert.Contains(t, html, "January 15, 2025")
		assert.Contains(t, html, "https://app.example.com/login")
	})

	t.Run("falls back to generic greeting", func(t *testing.T) {
		t.Parallel()

		html, err := templates.Render(context.Background(), templates.Welcome(templates.WelcomeParams{
			LoginURL: "https://app.example.com/login",
		}))
		require.NoError(t, err)
		assert.Contains(t, html, "Hi there")
	})

	t.Run("escapes html in names", func(t *testing.T) {
		t.Parallel()

		html, err := templates.Render(context.Background(), templates.Welcome(templates.WelcomeParams{
			Name:     "<script>alert(1)</script>",
			LoginURL: "https://app.example.com/login",
		}))
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
	})
}
