// Package middleware wraps menu actions with cross-cutting behavior.
package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/mmynk/clubledger/internal/validation"
)

// Action is one menu operation.
type Action func(ctx context.Context) error

// Observer receives the outcome of every wrapped action.
type Observer interface {
	ObserveAction(action string, err error)
}

// Logging returns an Action that logs every run of next.
// It logs the action name, duration, and any error. Validation errors are
// routine operator mistakes and log at Info, as does end of input; anything
// else logs at Error.
// A nil observer is allowed.
func Logging(name string, obs Observer, next Action) Action {
	return func(ctx context.Context) error {
		start := time.Now()

		err := next(ctx)

		duration := time.Since(start).Milliseconds()
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				slog.Info("Action interrupted by end of input",
					"action", name,
					"duration_ms", duration,
				)
			case validation.IsRejection(err):
				slog.Info("Action rejected",
					"action", name,
					"error", err,
					"duration_ms", duration,
				)
			default:
				slog.Error("Action failed",
					"action", name,
					"error", err,
					"duration_ms", duration,
				)
			}
		} else {
			slog.Debug("Action ok",
				"action", name,
				"duration_ms", duration,
			)
		}

		if obs != nil {
			obs.ObserveAction(name, err)
		}
		return err
	}
}
