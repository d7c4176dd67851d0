package randstr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every *InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrCombinationsExhausted is returned when every possible value was rejected
	// and no acceptable candidate can be produced anymore.
	ErrCombinationsExhausted = errors.New("cannot generate string because there are no more possible combinations, check your config")
)

// Reason tells why a Config failed validation.
type Reason int

// Validation failure reasons.
const (
	ReasonEmptyCharset Reason = iota + 1
	ReasonNonPositive
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case ReasonEmptyCharset:
		return "empty charset"
	case ReasonNonPositive:
		return "non positive"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// InvalidConfigError is returned by Config.Validate and Generator.Generate
// before any random data is drawn.
type InvalidConfigError struct {
	Reason Reason
	Field  string // set for ReasonNonPositive: "length" or "count"
}

func (e *InvalidConfigError) Error() string {
	switch e.Reason {
	case ReasonEmptyCharset:
		return "invalid config: charset can not be empty"
	case ReasonNonPositive:
		return fmt.Sprintf("invalid config: %s must be a positive number", e.Field)
	default:
		return "invalid config"
	}
}

// Is reports whether target is ErrInvalidConfig.
func (e *InvalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig //nolint:errorlint
}
