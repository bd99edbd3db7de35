package app

import "github.com/cadence-cli/cadence/internal/apperr"

var (
	errParseSessionCmd = &apperr.Error{
		Message: "unable to parse the session command",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "invalid period %q: must be one of %v",
	}

	errNoEditor = &apperr.Error{
		Message: "no editor found: set the EDITOR environment variable",
	}
)
