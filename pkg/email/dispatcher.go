package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/voicelane/trialwatch/pkg/email/templates"
)

// Recipient identifies who an email is addressed to.
type Recipient struct {
	Name  string
	Email string
}

// DispatcherConfig holds settings for building links embedded in emails.
type DispatcherConfig struct {
	// BaseURL is the public URL of the application, used to build the
	// upgrade and login links.
	BaseURL string `env:"BASE_URL,required"`
}

// Dispatcher renders and sends the three trial lifecycle emails. Template
// selection is fixed per method; all classification logic lives with the
// caller.
type Dispatcher struct {
	sender  EmailSender
	baseURL string
}

// NewDispatcher creates a Dispatcher on top of an EmailSender.
// Panics on a nil sender to fail fast during initialization.
func NewDispatcher(sender EmailSender, cfg DispatcherConfig) (*Dispatcher, error) {
	if sender == nil {
		panic("email: EmailSender is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}
	return &Dispatcher{
		sender:  sender,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// MustNewDispatcher creates a Dispatcher that panics on invalid config.
func MustNewDispatcher(sender EmailSender, cfg DispatcherConfig) *Dispatcher {
	d, err := NewDispatcher(sender, cfg)
	if err != nil {
		panic(err)
	}
	return d
}

// SendWelcome sends the trial welcome email.
func (d *Dispatcher) SendWelcome(ctx context.Context, to Recipient, trialEndsAt time.Time) error {
	body, err := templates.Render(ctx, templates.Welcome(templates.WelcomeParams{
		Name:        to.Name,
		TrialEndsAt: trialEndsAt,
		LoginURL:    d.baseURL + "/login",
	}))
	if err != nil {
		return errors.Join(ErrFailedToRender, err)
	}
	return d.sender.SendEmail(ctx, SendEmailParams{
		SendTo:   to.Email,
		Subject:  "Welcome — your trial has started",
		BodyHTML: body,
		Tag:      "trial-welcome",
	})
}

// SendTrialExpiring sends the N-days-left warning email.
func (d *Dispatcher) SendTrialExpiring(ctx context.Context, to Recipient, daysLeft int, trialEndsAt time.Time) error {
	body, err := templates.Render(ctx, templates.TrialExpiring(templates.TrialExpiringParams{
		Name:        to.Name,
		DaysLeft:    daysLeft,
		TrialEndsAt: trialEndsAt,
		UpgradeURL:  d.baseURL + "/billing",
	}))
	if err != nil {
		return errors.Join(ErrFailedToRender, err)
	}

	subject := fmt.Sprintf("Your trial ends in %d days", daysLeft)
	if daysLeft == 1 {
		subject = "Your trial ends tomorrow"
	}
	return d.sender.SendEmail(ctx, SendEmailParams{
		SendTo:   to.Email,
		Subject:  subject,
		BodyHTML: body,
		Tag:      fmt.Sprintf("trial-expiring-%dd", daysLeft),
	})
}

// SendTrialExpired sends the trial-expired email.
func (d *Dispatcher) SendTrialExpired(ctx context.Context, to Recipient) error {
	body, err := templates.Render(ctx, templates.TrialExpired(templates.TrialExpiredParams{
		Name:       to.Name,
		UpgradeURL: d.baseURL + "/billing",
	}))
	if err != nil {
		return errors.Join(ErrFailedToRender, err)
	}
	return d.sender.SendEmail(ctx, SendEmailParams{
		SendTo:   to.Email,
		Subject:  "Your trial has ended",
		BodyHTML: body,
		Tag:      "trial-expired",
	})
}
