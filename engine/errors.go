package engine

import "github.com/cadence-cli/cadence/internal/apperr"

var (
	// ErrAlreadyRunning indicates an attempt to start a session while one
	// is already in progress.
	ErrAlreadyRunning = &apperr.Error{
		Message: "a session is already in progress",
	}

	// ErrInvalidTransition indicates an operation that is not valid in the
	// timer's current state. It is a contract violation: callers should
	// consult the Can* predicates first.
	ErrInvalidTransition = &apperr.Error{
		Message: "cannot %s: timer is %s",
	}

	// ErrDuration indicates an invalid custom or adjusted target duration.
	ErrDuration = &apperr.Error{
		Message: "%s duration must be between %d and %d minutes",
	}

	// ErrIntegrity indicates that a loaded session or snapshot failed
	// structural validation.
	ErrIntegrity = &apperr.Error{
		Message: "stored %s failed integrity checks",
	}

	// ErrStrictMode indicates that pausing was refused because strict mode
	// is enabled.
	ErrStrictMode = &apperr.Error{
		Cause:   ErrInvalidTransition,
		Message: "pausing a work session is disabled in strict mode",
	}

	// ErrSkipBreaks indicates that skipping a break was refused by
	// configuration.
	ErrSkipBreaks = &apperr.Error{
		Cause:   ErrInvalidTransition,
		Message: "skipping breaks is disabled",
	}
)
