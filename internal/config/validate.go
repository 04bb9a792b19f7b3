package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Validation errors.
var (
	ErrInvalidRole         = errors.New("athlete.role must be one of athlete, parent, coach, official")
	ErrTickIntervalRange   = errors.New("capture.tick_interval must be between 1ms and 1s")
	ErrNegativeVerbosity   = errors.New("log.verbosity must not be negative")
	ErrAthleteNameTooLong  = errors.New("athlete.name must be at most 64 characters")
	errMultipleValidations = errors.New("invalid configuration")
)

// ValidRoles contains the accepted athlete roles.
var ValidRoles = map[string]bool{
	"athlete":  true,
	"parent":   true,
	"coach":    true,
	"official": true,
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	if !ValidRoles[strings.ToLower(c.Athlete.Role)] {
		errs = append(errs, fmt.Errorf("%w, got %q", ErrInvalidRole, c.Athlete.Role))
	}
	if utf8.RuneCountInString(c.Athlete.Name) > 64 {
		errs = append(errs, ErrAthleteNameTooLong)
	}
	if c.Capture.TickInterval < time.Millisecond || c.Capture.TickInterval > time.Second {
		errs = append(errs, fmt.Errorf("%w, got %s", ErrTickIntervalRange, c.Capture.TickInterval))
	}
	if c.Log.Verbosity < 0 {
		errs = append(errs, ErrNegativeVerbosity)
	}

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return fmt.Errorf("%w: %w", errMultipleValidations, errors.Join(errs...))
	}
}
