package cloud

import (
	"fmt"

	"github.com/chewxy/math32"
)

// ConfigError reports an invalid construction parameter. Generators return it
// before allocating anything so callers never see empty or NaN-filled buffers.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func positive(field string, v float32) error {
	if !(v > 0) {
		return &ConfigError{Field: field, Value: v, Reason: "must be positive"}
	}
	return nil
}

func positiveCount(field string, n int) error {
	if n <= 0 {
		return &ConfigError{Field: field, Value: n, Reason: "must be positive"}
	}
	return nil
}

func nonNegative(field string, v float32) error {
	if !(v >= 0) {
		return &ConfigError{Field: field, Value: v, Reason: "must not be negative"}
	}
	return nil
}

func opacity(field string, v float32) error {
	if !(v >= 0 && v <= 1) {
		return &ConfigError{Field: field, Value: v, Reason: "must be within [0,1]"}
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func finite(field string, v float32) error {
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return &ConfigError{Field: field, Value: v, Reason: "must be finite"}
	}
	return nil
}
