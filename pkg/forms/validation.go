package forms

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vittin/site/pkg/security"
)

// Validator validates a single submitted value.
type Validator interface {
	// Validate checks if the value is valid.
	Validate(value string) error
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(value string) error

// Validate calls f(value).
func (f ValidatorFunc) Validate(value string) error {
	return f(value)
}

// Required rejects blank values.
func Required(msg string) Validator {
	return ValidatorFunc(func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(msg)
		}
		return nil
	})
}

// Email rejects malformed addresses. Empty values pass; combine with Required.
func Email(msg string) Validator {
	return ValidatorFunc(func(value string) error {
		if value == "" {
			return nil
		}
		if !security.IsValidEmail(value) {
			return errors.New(msg)
		}
		return nil
	})
}

// MaxLength rejects values longer than n runes.
func MaxLength(n int, msg string) Validator {
	return ValidatorFunc(func(value string) error {
		if utf8.RuneCountInString(value) > n {
			if strings.Contains(msg, "%d") {
				return fmt.Errorf(msg, n)
			}
			return errors.New(msg)
		}
		return nil
	})
}
