package authform

import (
	"github.com/modusplant/plantkit/pkg/validator"
)

// Shared field prompts.
const (
	msgEmailRequired    = "이메일을 입력해주세요"
	msgEmailFormat      = "올바른 이메일을 입력해주세요"
	msgPasswordRequired = "비밀번호를 입력해주세요"
	msgCodeRequired     = "인증코드를 입력해주세요"
	msgPasswordPolicy   = "영문 대소문자, 숫자, 특수문자를 포함한 8자 이상의 비밀번호로 입력해주세요"
	msgConfirmRequired  = "비밀번호 확인을 입력해주세요"
	msgConfirmMismatch  = "비밀번호가 서로 일치하지 않습니다"
	msgNicknameRequired = "닉네임을 입력해주세요"
	msgNicknameTooLong  = "닉네임은 20자 이내로 입력해주세요"
	msgAgreeTerms       = "이용약관에 동의해주세요"
	msgAgreePrivacy     = "개인정보처리방침에 동의해주세요"
	msgAgreeCommunity   = "커뮤니티 운영정책에 동의해주세요"
)

// LoginForm is the login schema: email format plus a non-empty password.
//
// The password rule is deliberately non-empty only. The 8-character minimum
// is a signup-time policy; re-enforcing it at login would lock out accounts
// created before the policy existed, so the server's credential check is the
// single source of truth here.
type LoginForm struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// NewLoginForm returns a login form with the product default of keeping the
// session (rememberMe on).
func NewLoginForm() LoginForm {
	return LoginForm{RememberMe: true}
}

// Validate runs the schema and returns validator.ValidationErrors on failure.
func (f LoginForm) Validate() error {
	return validator.Apply(
		validator.NonEmpty("email", f.Email, msgEmailRequired),
		validator.Email("email", f.Email, msgEmailFormat),
		validator.NonEmpty("password", f.Password, msgPasswordRequired),
	)
}

// SignupForm is the signup schema. The verification code is only checked for
// presence; its correctness is proven against the server by the email
// verification flow. All three agreements must be literally true.
type SignupForm struct {
	Email            string `json:"email"`
	VerificationCode string `json:"verificationCode"`
	Password         string `json:"password"`
	PasswordConfirm  string `json:"passwordConfirm"`
	Nickname         string `json:"nickname"`
	AgreeToTerms     bool   `json:"agreeToTerms"`
	AgreeToPrivacy   bool   `json:"agreeToPrivacy"`
	AgreeToCommunity bool   `json:"agreeToCommunity"`
}

// NewSignupForm returns an empty signup form.
func NewSignupForm() SignupForm {
	return SignupForm{}
}

// Validate runs the schema and returns validator.ValidationErrors on failure.
// The password equality check is attached to passwordConfirm.
func (f SignupForm) Validate() error {
	return validator.Apply(
		validator.NonEmpty("email", f.Email, msgEmailRequired),
		validator.Email("email", f.Email, msgEmailFormat),
		validator.NonEmpty("verificationCode", f.VerificationCode, msgCodeRequired),
		validator.StrongPassword("password", f.Password, msgPasswordPolicy),
		validator.NonEmpty("passwordConfirm", f.PasswordConfirm, msgConfirmRequired),
		validator.Equal("passwordConfirm", f.Password, f.PasswordConfirm, msgConfirmMismatch),
		validator.NonEmpty("nickname", f.Nickname, msgNicknameRequired),
		validator.MaxRunes("nickname", f.Nickname, validator.NicknameMaxLen, msgNicknameTooLong),
		validator.True("agreeToTerms", f.AgreeToTerms, msgAgreeTerms),
		validator.True("agreeToPrivacy", f.AgreeToPrivacy, msgAgreePrivacy),
		validator.True("agreeToCommunity", f.AgreeToCommunity, msgAgreeCommunity),
	)
}

// ResetPasswordForm is the password reset schema; the new password follows
// the signup policy and the equality check is attached to newPasswordConfirm.
type ResetPasswordForm struct {
	Email              string `json:"email"`
	VerificationCode   string `json:"verificationCode"`
	NewPassword        string `json:"newPassword"`
	NewPasswordConfirm string `json:"newPasswordConfirm"`
}

// Validate runs the schema and returns validator.ValidationErrors on failure.
func (f ResetPasswordForm) Validate() error {
	return validator.Apply(
		validator.NonEmpty("email", f.Email, msgEmailRequired),
		validator.Email("email", f.Email, msgEmailFormat),
		validator.NonEmpty("verificationCode", f.VerificationCode, msgCodeRequired),
		validator.StrongPassword("newPassword", f.NewPassword, msgPasswordPolicy),
		validator.NonEmpty("newPasswordConfirm", f.NewPasswordConfirm, msgConfirmRequired),
		validator.Equal("newPasswordConfirm", f.NewPassword, f.NewPasswordConfirm, msgConfirmMismatch),
	)
}
