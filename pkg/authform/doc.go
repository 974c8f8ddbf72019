// Package authform defines the login, signup and reset-password form
// schemas of the modusplant community app.
//
// Each form is a plain value type whose Validate method runs one atomic pass
// over all structural and cross-field rules via pkg/validator: every field is
// checked even when an earlier one fails, and each field surfaces only its
// first violated rule. The schemas never perform I/O; server-side concerns
// (code correctness, nickname availability, duplicate email) are delegated
// to pkg/authapi and gated separately.
//
// # Usage
//
//	form := authform.NewSignupForm()
//	form.Email = "user@example.com"
//	// ... bind remaining inputs ...
//
//	errs := validator.ExtractValidationErrors(form.Validate())
//	emailMsg := errs.First("email")
//
//	ready := authform.SignupReady(form, authform.SignupGate{
//	    EmailVerified:     emailFlow.Verified(),
//	    NicknameChecked:   nickFlow.Checked(),
//	    NicknameAvailable: nickFlow.Available(),
//	})
package authform
