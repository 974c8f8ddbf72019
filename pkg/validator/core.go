package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is a single failed rule, scoped to one form field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects every failed rule of one validation pass.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any rule failed for the given field.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// First returns the message of the first failed rule for the given field.
// Rules are evaluated in declaration order, so this is the highest-priority
// violation. Returns "" when the field is clean.
func (ve ValidationErrors) First(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

// Fields returns the distinct fields with at least one failed rule, in
// first-occurrence order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a single validation check bound to the error it produces on failure.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates every rule and returns the collected failures as
// ValidationErrors. All rules run even after a failure so that one pass
// reports every broken field.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors unwraps ValidationErrors from err, or returns nil
// when err is nil or of another kind.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verr ValidationErrors
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}

// IsValidationError reports whether err carries ValidationErrors.
func IsValidationError(err error) bool {
	var verr ValidationErrors
	return err != nil && errors.As(err, &verr)
}
