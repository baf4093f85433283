package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/fittrack/fittrack/internal/fitness"
)

// ErrValidation wraps every input validation failure.
var ErrValidation = errors.New("validation failed")

func validateDate(date string) error {
	if _, err := time.Parse(fitness.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrValidation, date)
	}
	return nil
}

func validateNonNegative(field string, values ...float64) error {
	for _, v := range values {
		if v < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrValidation, field)
		}
	}
	return nil
}
