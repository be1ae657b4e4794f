package domain

import (
	"errors"
	"fmt"
)

// ValidationError signals a broken contract between the detectors,
// the aggregator and the certificate builder. It is a programming
// error, not a user-facing condition: the run that raised it produces
// no certificate.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("certificate validation failed on %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{
		Field:  field,
		Reason: reason,
	}
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var validationError *ValidationError
	return errors.As(err, &validationError)
}
