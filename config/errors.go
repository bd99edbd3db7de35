package config

import "github.com/cadence-cli/cadence/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	// ErrInvalidDuration indicates a phase duration outside its allowed
	// range.
	ErrInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %d and %d minutes",
	}

	// ErrInvalidInterval indicates a long break interval outside the
	// allowed range.
	ErrInvalidInterval = &apperr.Error{
		Message: "long break interval must be between %d and %d sessions",
	}

	errEmptyMsg = &apperr.Error{
		Message: "%s message cannot be empty",
	}

	errNegativeAllowance = &apperr.Error{
		Message: "overtime allowance cannot be negative",
	}

	errNegativeGoal = &apperr.Error{
		Message: "daily goal cannot be negative",
	}
)
