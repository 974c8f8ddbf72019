// Package validator implements the field validation rules of the modusplant
// signup and login flows: email format, password requirements and strength
// scoring, and nickname constraints.
//
// The package has two layers. The lower layer is a set of pure predicates
// (ValidateEmail, ValidatePassword, PasswordStrength, ValidateNickname) that
// never touch the network and carry the product's fixed Korean feedback
// strings. The upper layer is a small rule engine (Rule, Apply) used by
// package authform to run a whole form as one atomic pass: every rule is
// evaluated, failures are collected per field, and nothing short-circuits
// across fields.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.NonEmpty("email", email, "이메일을 입력해주세요"),
//	    validator.Email("email", email, "올바른 이메일을 입력해주세요"),
//	)
//	if errs := validator.ExtractValidationErrors(err); !errs.IsEmpty() {
//	    msg := errs.First("email")
//	    // ...
//	}
//
// # Error Handling
//
// Apply returns ValidationErrors (which satisfies error) when at least one
// rule fails, nil otherwise. Callers that only care about the user-facing
// message for a field use First, which implements the first-violation-wins
// policy of the forms.
package validator
