package templates

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
)

// WelcomeParams carries the data for the trial welcome email.
type WelcomeParams struct {
	Name        string
	TrialEndsAt time.Time
	LoginURL    string
}

// TrialExpiringParams carries the data for the N-days-left warning email.
type TrialExpiringParams struct {
	Name        string
	DaysLeft    int
	TrialEndsAt time.Time
	UpgradeURL  string
}

// TrialExpiredParams carries the data for the trial-expired email.
type TrialExpiredParams struct {
	Name       string
	UpgradeURL string
}

// Welcome is the email sent when an organization's trial begins.
func Welcome(p WelcomeParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeLayout(w, "Welcome aboard", func(w io.Writer) error {
			_, err := fmt.Fprintf(w,
				`<p>Hi %s,</p>`+
					`<p>Your trial is live. You have full access to the platform until <strong>%s</strong>.</p>`+
					`<p><a href="%s" class="btn">Get started</a></p>`,
				templ.EscapeString(displayName(p.Name)),
				templ.EscapeString(p.TrialEndsAt.Format("January 2, 2006")),
				templ.EscapeString(p.LoginURL),
			)
			return err
		})
	})
}

// TrialExpiring is the warning email sent at the 7/3/1 day thresholds.
func TrialExpiring(p TrialExpiringParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeLayout(w, fmt.Sprintf("Your trial ends in %s", dayWord(p.DaysLeft)), func(w io.Writer) error {
			_, err := fmt.Fprintf(w,
				`<p>Hi %s,</p>`+
					`<p>Your trial ends on <strong>%s</strong> — that's %s from now. Upgrade to keep your agents, phone numbers, and call history.</p>`+
					`<p><a href="%s" class="btn">Upgrade now</a></p>`,
				templ.EscapeString(displayName(p.Name)),
				templ.EscapeString(p.TrialEndsAt.Format("January 2, 2006")),
				templ.EscapeString(dayWord(p.DaysLeft)),
				templ.EscapeString(p.UpgradeURL),
			)
			return err
		})
	})
}

// TrialExpired is the email sent when the trial has lapsed.
func TrialExpired(p TrialExpiredParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeLayout(w, "Your trial has ended", func(w io.Writer) error {
			_, err := fmt.Fprintf(w,
				`<p>Hi %s,</p>`+
					`<p>Your trial has ended. Your data is safe, but your agents are paused until you pick a plan.</p>`+
					`<p><a href="%s" class="btn">Choose a plan</a></p>`,
				templ.EscapeString(displayName(p.Name)),
				templ.EscapeString(p.UpgradeURL),
			)
			return err
		})
	})
}

// writeLayout wraps the body in the shared transactional email frame.
func writeLayout(w io.Writer, heading string, body func(io.Writer) error) error {
	if _, err := fmt.Fprintf(w,
		`<!DOCTYPE html><html><head><meta charset="utf-8"><style>`+
			`body{font-family:-apple-system,Segoe UI,sans-serif;color:#1a1a2e;margin:0;padding:24px}`+
			`.card{max-width:520px;margin:0 auto;padding:32px;border:1px solid #e5e7eb;border-radius:8px}`+
			`.btn{display:inline-block;padding:10px 20px;background:#4f46e5;color:#fff;text-decoration:none;border-radius:6px}`+
			`</style></head><body><div class="card"><h2>%s</h2>`,
		templ.EscapeString(heading),
	); err != nil {
		return err
	}
	if err := body(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</div></body></html>`)
	return err
}

func displayName(name string) string {
	if name == "" {
		return "there"
	}
	return name
}

func dayWord(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
