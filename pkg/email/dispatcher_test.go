package email_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voicelane/trialwatch/pkg/email"
)

func newTestDispatcher(t *testing.T, sender email.EmailSender) *email.Dispatcher {
	t.Helper()
	d, err := email.NewDispatcher(sender, email.DispatcherConfig{BaseURL: "https://app.example.com/"})
	require.NoError(t, err)
	return d
}

func TestNewDispatcher(t *testing.T) {
	t.Parallel()

	t.Run("nil sender panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			_, _ = email.NewDispatcher(nil, email.DispatcherConfig{BaseURL: "https://x"})
		})
	})

	t.Run("missing base url", func(t *testing.T) {
		t.Parallel()

		_, err := email.NewDispatcher(&MockEmailSender{}, email.DispatcherConfig{})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})
}

func TestDispatcher_SendWelcome(t *testing.T) {
	t.Parallel()

	sender := new(MockEmailSender)
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p email.SendEmailParams) bool {
		return p.SendTo == "ada@example.com" && p.Tag == "trial-welcome" && p.BodyHTML != ""
	})).Return(nil)

	d := newTestDispatcher(t, sender)
	err := d.SendWelcome(context.Background(),
		email.Recipient{Name: "Ada", Email: "ada@example.com"},
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestDispatcher_SendTrialExpiring(t *testing.T) {
	t.Parallel()

	t.Run("plural subject and tagged by days", func(t *testing.T) {
		t.Parallel()

		sender := new(MockEmailSender)
		var captured email.SendEmailParams
		sender.On("SendEmail", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(email.SendEmailParams)
			}).Return(nil)

		d := newTestDispatcher(t, sender)
		err := d.SendTrialExpiring(context.Background(),
			email.Recipient{Name: "Ada", Email: "ada@example.com"},
			7, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
		)

		require.NoError(t, err)
		assert.Equal(t, "Your trial ends in 7 days", captured.Subject)
		assert.Equal(t, "trial-expiring-7d", captured.Tag)
		assert.Contains(t, captured.BodyHTML, "7 days")
		assert.Contains(t, captured.BodyHTML, "https://app.example.com/billing")
	})

	t.Run("singular subject for one day", func(t *testing.T) {
		t.Parallel()

		sender := new(MockEmailSender)
		var captured email.SendEmailParams
		sender.On("SendEmail", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(email.SendEmailParams)
			}).Return(nil)

		d := newTestDispatcher(t, sender)
		err := d.SendTrialExpiring(context.Background(),
			email.Recipient{Name: "Ada", Email: "ada@example.com"},
			1, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		)

		require.NoError(t, err)
		assert.Equal(t, "Your trial ends tomorrow", captured.Subject)
		assert.Equal(t, "trial-expiring-1d", captured.Tag)
	})
}

func TestDispatcher_SendTrialExpired(t *testing.T) {
	t.Parallel()

	t.Run("sends tagged expired email", func(t *testing.T) {
		t.Parallel()

		sender := new(MockEmailSender)
		var captured email.SendEmailParams
		sender.On("SendEmail", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(email.SendEmailParams)
			}).Return(nil)

		d := newTestDispatcher(t, sender)
		err := d.SendTrialExpired(context.Background(),
			email.Recipient{Name: "Ada", Email: "ada@example.com"})

		require.NoError(t, err)
		assert.Equal(t, "trial-expired", captured.Tag)
		assert.Equal(t, "Your trial has ended", captured.Subject)
	})

	t.Run("transport failure surfaces without panic", func(t *testing.T) {
		t.Parallel()

		sender := new(MockEmailSender)
		sender.On("SendEmail", mock.Anything, mock.Anything).Return(email.ErrFailedToSendEmail)

		d := newTestDispatcher(t, sender)
		err := d.SendTrialExpired(context.Background(),
			email.Recipient{Name: "Ada", Email: "ada@example.com"})

		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	})
}
