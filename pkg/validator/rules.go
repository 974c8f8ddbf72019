package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// emailRegex is the product's email format check. Intentionally loose (one @,
// no whitespace, dotted domain); final ownership proof is the verification
// code, not the regex.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether s looks like a deliverable email address.
func ValidateEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// NonEmpty fails when the value is empty. The message is caller-supplied
// because every form phrases the prompt differently.
func NonEmpty(field, value, message string) Rule {
	return Rule{
		Check: func() bool { return value != "" },
		Error: ValidationError{Field: field, Message: message},
	}
}

// NonBlank fails when the value is empty after trimming whitespace.
func NonBlank(field, value, message string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: message},
	}
}

// Email fails when the value does not match the email format. An empty value
// also fails; pair with NonEmpty so the emptiness message wins.
func Email(field, value, message string) Rule {
	return Rule{
		Check: func() bool { return ValidateEmail(value) },
		Error: ValidationError{Field: field, Message: message},
	}
}

// MinRunes fails when the value is shorter than min runes.
func MinRunes(field, value string, min int, message string) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) >= min },
		Error: ValidationError{Field: field, Message: message},
	}
}

// MaxRunes fails when the value is longer than max runes.
func MaxRunes(field, value string, max int, message string) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= max },
		Error: ValidationError{Field: field, Message: message},
	}
}

// True fails unless the flag is literally true. Used for agreement checkboxes.
func True(field string, value bool, message string) Rule {
	return Rule{
		Check: func() bool { return value },
		Error: ValidationError{Field: field, Message: message},
	}
}

// Equal fails when the two values differ. The error is attached to field,
// which by convention is the confirmation input.
func Equal(field, value, other, message string) Rule {
	return Rule{
		Check: func() bool { return value == other },
		Error: ValidationError{Field: field, Message: message},
	}
}
