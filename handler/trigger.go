package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/voicelane/trialwatch/pkg/logger"
	"github.com/voicelane/trialwatch/pkg/notifier"
)

// BatchRunner is the slice of the notifier the trigger endpoint needs.
type BatchRunner interface {
	Run(ctx context.Context, now time.Time) (*notifier.Results, error)
}

type triggerResponse struct {
	Success   bool              `json:"success"`
	Timestamp string            `json:"timestamp,omitempty"`
	Results   *notifier.Results `json:"results,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// TrialLifecycle runs one batch invocation per request. Partial results (for
// example after request cancellation) are still reported as success with
// their collected errors; only a failure before any subscription was touched
// becomes a 500.
func TrialLifecycle(runner BatchRunner, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()

		results, err := runner.Run(r.Context(), now)
		if results == nil {
			log.ErrorContext(r.Context(), "trial lifecycle batch failed", logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, triggerResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, triggerResponse{
			Success:   true,
			Timestamp: now.Format(time.RFC3339),
			Results:   results,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
