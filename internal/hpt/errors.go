package hpt

import "fmt"

// ErrConfig matches any *ConfigError via errors.Is.
var ErrConfig = &ConfigError{}

// ErrLengthMismatch matches any *LengthMismatchError via errors.Is.
var ErrLengthMismatch = &LengthMismatchError{}

// ConfigError reports an invalid bound argument / free parameter split.
// Index is the position of the offending bound argument in construction order,
// or -1 when the error is not tied to a single argument.
type ConfigError struct {
	Field  string
	Index  int
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Index >= 0 && e.Field != "" {
		return fmt.Sprintf("config error: bound argument %d: %s %s", e.Index, e.Field, e.Reason)
	}
	if e.Field != "" {
		return "config error: " + e.Field + " " + e.Reason
	}
	return "config error"
}

func (e *ConfigError) Is(target error) bool {
	_, ok := target.(*ConfigError)
	return ok
}

// LengthMismatchError reports a vector whose length differs from the number
// of free parameters.
type LengthMismatchError struct {
	What     string
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %s has %d elements, expected %d free parameters", e.What, e.Actual, e.Expected)
}

func (e *LengthMismatchError) Is(target error) bool {
	_, ok := target.(*LengthMismatchError)
	return ok
}
