package validator

import "regexp"

var (
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`\d`)

	// The product accepts exactly this special-character set. Widening it
	// would accept passwords the signup endpoint rejects.
	specialCharRegex = regexp.MustCompile(`[@$!%*?&]`)
)

// Password strength feedback, keyed by the number of satisfied requirements.
const (
	FeedbackEmpty      = "비밀번호를 입력하세요"
	FeedbackVeryWeak   = "매우 약함"
	FeedbackWeak       = "약함"
	FeedbackFair       = "보통"
	FeedbackStrong     = "강함"
	FeedbackVeryStrong = "매우 강함"
	FeedbackUnknown    = "알 수 없음"
)

// PasswordRequirements breaks the password policy into its five checks.
type PasswordRequirements struct {
	MinLength      bool `json:"minLength"`
	HasLowerCase   bool `json:"hasLowerCase"`
	HasUpperCase   bool `json:"hasUpperCase"`
	HasNumber      bool `json:"hasNumber"`
	HasSpecialChar bool `json:"hasSpecialChar"`
}

// PasswordCheck is the result of ValidatePassword.
type PasswordCheck struct {
	Valid        bool                 `json:"isValid"`
	Requirements PasswordRequirements `json:"requirements"`
}

// Strength is the result of PasswordStrength: how many of the five
// requirements the password satisfies, with user-facing feedback.
type Strength struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

func checkRequirements(password string) PasswordRequirements {
	return PasswordRequirements{
		MinLength:      len(password) >= 8,
		HasLowerCase:   lowercaseRegex.MatchString(password),
		HasUpperCase:   uppercaseRegex.MatchString(password),
		HasNumber:      digitRegex.MatchString(password),
		HasSpecialChar: specialCharRegex.MatchString(password),
	}
}

// ValidatePassword checks the signup password policy: at least 8 bytes with
// lowercase, uppercase, digit and one of @$!%*?&. Valid requires all five.
func ValidatePassword(password string) PasswordCheck {
	req := checkRequirements(password)
	return PasswordCheck{
		Valid: req.MinLength && req.HasLowerCase && req.HasUpperCase &&
			req.HasNumber && req.HasSpecialChar,
		Requirements: req,
	}
}

// PasswordStrength scores a password 0..5 by counting satisfied
// requirements. The empty string scores 0 with a distinct prompt instead of
// a strength verdict.
func PasswordStrength(password string) Strength {
	if password == "" {
		return Strength{Score: 0, Feedback: FeedbackEmpty}
	}

	req := checkRequirements(password)
	score := 0
	for _, ok := range []bool{req.MinLength, req.HasLowerCase, req.HasUpperCase, req.HasNumber, req.HasSpecialChar} {
		if ok {
			score++
		}
	}

	feedback := map[int]string{
		0: FeedbackVeryWeak,
		1: FeedbackWeak,
		2: FeedbackFair,
		3: FeedbackFair,
		4: FeedbackStrong,
		5: FeedbackVeryStrong,
	}[score]
	if feedback == "" {
		// Unreachable while the score stays within 0..5.
		feedback = FeedbackUnknown
	}

	return Strength{Score: score, Feedback: feedback}
}

// StrongPassword is the rule form of ValidatePassword for use in form
// schemas.
func StrongPassword(field, value, message string) Rule {
	return Rule{
		Check: func() bool { return ValidatePassword(value).Valid },
		Error: ValidationError{Field: field, Message: message},
	}
}
