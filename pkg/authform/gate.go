package authform

import (
	"strings"

	"github.com/modusplant/plantkit/pkg/validator"
)

// commonEmailDomains are the providers the email input autocompletes with,
// in display order.
var commonEmailDomains = []string{
	"@gmail.com",
	"@naver.com",
	"@daum.net",
	"@kakao.com",
	"@outlook.com",
	"@yahoo.com",
	"@hotmail.com",
}

// SignupGate carries the out-of-band conditions the schema cannot see:
// results of the two server-backed verification flows.
type SignupGate struct {
	EmailVerified     bool
	NicknameChecked   bool
	NicknameAvailable bool
}

// SignupReady reports whether the signup form may be submitted: the email is
// verified, the nickname is checked and available, and the schema passes
// with zero field errors.
//
// The schema requires all three agreements, so the community agreement gates
// submission along with terms and privacy; a gate that ignored it while the
// schema still failed could never submit anyway.
func SignupReady(form SignupForm, gate SignupGate) bool {
	if !gate.EmailVerified || !gate.NicknameChecked || !gate.NicknameAvailable {
		return false
	}
	return form.Validate() == nil
}

// SignupProgress reports step completion for the signup progress bar,
// 0-100 in quarter steps: email verified, password valid, nickname valid,
// terms agreed.
func SignupProgress(emailVerified, passwordValid, nicknameValid, termsAgreed bool) int {
	done := 0
	for _, step := range []bool{emailVerified, passwordValid, nicknameValid, termsAgreed} {
		if step {
			done++
		}
	}
	return done * 100 / 4
}

// FirstMessage returns the first error message of a validation pass, or ""
// when err carries no validation errors. Forms that render a single error
// line use this.
func FirstMessage(err error) string {
	errs := validator.ExtractValidationErrors(err)
	if errs.IsEmpty() {
		return ""
	}
	return errs[0].Message
}

// ErrorCount returns the number of fields with at least one violation.
func ErrorCount(err error) int {
	return len(validator.ExtractValidationErrors(err).Fields())
}

// EmailDomainSuggestions completes a partial email with common provider
// domains for the input's autocomplete dropdown. Once the input contains an
// "@" the result is nil and the dropdown closes.
func EmailDomainSuggestions(email string) []string {
	if strings.Contains(email, "@") {
		return nil
	}

	suggestions := make([]string, 0, len(commonEmailDomains))
	for _, domain := range commonEmailDomains {
		suggestions = append(suggestions, email+domain)
	}
	return suggestions
}
