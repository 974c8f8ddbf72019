package authapi

import "context"

// User is the account snapshot returned by signup and login.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// EmailVerificationResult is the outcome of requesting a verification code.
// ExpiresIn is the code lifetime in seconds, zero on failure.
type EmailVerificationResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ExpiresIn int    `json:"expiresIn,omitempty"`
}

// CodeVerificationResult is the outcome of confirming a verification code.
type CodeVerificationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NicknameCheckResult is the outcome of a nickname availability check.
// Available is only meaningful when Success is true.
type NicknameCheckResult struct {
	Success   bool   `json:"success"`
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// SignupRequest is the signup payload. Agreement flags record acceptance of
// the current policy documents.
type SignupRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	Nickname         string `json:"nickname"`
	AgreeToTerms     bool   `json:"agreeToTerms"`
	AgreeToPrivacy   bool   `json:"agreeToPrivacy"`
	AgreeToCommunity bool   `json:"agreeToCommunity"`
}

// SignupResult is the outcome of a signup attempt. User is set on success.
type SignupResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe,omitempty"`
}

// LoginResult is the outcome of a login attempt. User and Token are set on
// success; Message explains a Success=false outcome.
type LoginResult struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// Client is the auth API contract shared by both backends. Every operation
// returns its result value even for expected business failures; errors are
// transport-level only.
type Client interface {
	RequestEmailVerification(ctx context.Context, email string) (EmailVerificationResult, error)
	VerifyEmailCode(ctx context.Context, email, code string) (CodeVerificationResult, error)
	CheckNickname(ctx context.Context, nickname string) (NicknameCheckResult, error)
	Signup(ctx context.Context, req SignupRequest) (SignupResult, error)
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)
}
