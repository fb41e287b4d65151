// Package validation holds the field checks shared by habit creation and
// editing. Both paths must reject the same inputs so that an out-of-enum
// periodicity can never reach the streak calculator.
package validation

import (
	"fmt"
	"strings"

	"github.com/Pordilz/habit-tracker/internal/constants"
)

// ValidationError describes a rejected field value on create or edit.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// Name checks that a habit name is non-empty after trimming whitespace.
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Msg: "must not be empty"}
	}
	return nil
}

// PeriodicityValue checks that p is one of the supported periodicities.
func PeriodicityValue(p constants.Periodicity) error {
	if !p.Valid() {
		return &ValidationError{
			Field: "periodicity",
			Msg:   fmt.Sprintf("must be %q or %q, got %q", constants.PeriodicityDaily, constants.PeriodicityWeekly, string(p)),
		}
	}
	return nil
}

// ParsePeriodicity converts user input into a Periodicity, accepting any
// casing and surrounding whitespace.
func ParsePeriodicity(s string) (constants.Periodicity, error) {
	p := constants.Periodicity(strings.ToLower(strings.TrimSpace(s)))
	if err := PeriodicityValue(p); err != nil {
		return "", err
	}
	return p, nil
}
