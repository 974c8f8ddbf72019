package authapi

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Fixture values the simulator keys its deterministic outcomes on.
const (
	// SimVerificationCode is the only code VerifyEmailCode accepts.
	SimVerificationCode = "123456"
	// SimDuplicateEmail always reports an already-registered address.
	SimDuplicateEmail = "exists@test.com"
	// SimRequestFailEmail makes the verification request itself fail.
	SimRequestFailEmail = "fail@test.com"
	// SimTestEmail / SimTestPassword are the working login credentials.
	SimTestEmail    = "test@modusplant.com"
	SimTestPassword = "Test123!"
	// SimToken is the token returned for a successful login.
	SimToken = "mock_jwt_token"
	// SimCodeTTL is the verification-code lifetime in seconds.
	SimCodeTTL = 180
)

// simTestUser mirrors the account behind SimTestEmail.
var simTestUser = User{ID: "user_test", Email: SimTestEmail, Nickname: "테스트유저"}

// reservedNicknames is the blocklist the availability check rejects,
// compared case-insensitively.
var reservedNicknames = []string{"admin", "test", "모두의식물", "modusplant"}

// Simulator implements Client in-process with canned outcomes and artificial
// latency, so UI work proceeds without a backend. Outcomes are keyed on the
// Sim* fixture values; everything else succeeds.
type Simulator struct {
	minLatency time.Duration
	maxLatency time.Duration
}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithLatency overrides the simulated network delay range. Pass zeros for
// instant responses in tests.
func WithLatency(min, max time.Duration) SimulatorOption {
	return func(s *Simulator) {
		if min < 0 || max < min {
			return
		}
		s.minLatency, s.maxLatency = min, max
	}
}

// NewSimulator creates the simulated backend with the default 600ms-1500ms
// latency range.
func NewSimulator(opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		minLatency: 600 * time.Millisecond,
		maxLatency: 1500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// delay sleeps for a random duration within the latency range, honoring
// context cancellation the way an aborted HTTP request would.
func (s *Simulator) delay(ctx context.Context) error {
	d := s.minLatency
	if span := s.maxLatency - s.minLatency; span > 0 {
		d += time.Duration(rand.Int64N(int64(span)))
	}
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RequestEmailVerification pretends to email a code. SimRequestFailEmail
// reports a duplicate address; any other address succeeds with SimCodeTTL.
func (s *Simulator) RequestEmailVerification(ctx context.Context, email string) (EmailVerificationResult, error) {
	if err := s.delay(ctx); err != nil {
		return EmailVerificationResult{}, networkError(err)
	}

	if email == SimRequestFailEmail {
		return EmailVerificationResult{Success: false, Message: "이미 가입된 이메일입니다."}, nil
	}
	return EmailVerificationResult{
		Success:   true,
		Message:   "인증코드가 발송되었습니다.",
		ExpiresIn: SimCodeTTL,
	}, nil
}

// VerifyEmailCode accepts SimVerificationCode for any address.
func (s *Simulator) VerifyEmailCode(ctx context.Context, email, code string) (CodeVerificationResult, error) {
	if err := s.delay(ctx); err != nil {
		return CodeVerificationResult{}, networkError(err)
	}

	if code == SimVerificationCode {
		return CodeVerificationResult{Success: true, Message: "이메일 인증이 완료되었습니다."}, nil
	}
	return CodeVerificationResult{Success: false, Message: "인증코드가 일치하지 않습니다."}, nil
}

// CheckNickname rejects the reserved blocklist, case-insensitively.
func (s *Simulator) CheckNickname(ctx context.Context, nickname string) (NicknameCheckResult, error) {
	if err := s.delay(ctx); err != nil {
		return NicknameCheckResult{}, networkError(err)
	}

	for _, reserved := range reservedNicknames {
		if strings.EqualFold(nickname, reserved) {
			return NicknameCheckResult{Success: true, Available: false, Message: "사용 중인 닉네임입니다."}, nil
		}
	}
	return NicknameCheckResult{Success: true, Available: true, Message: "사용 가능한 닉네임입니다."}, nil
}

// Signup succeeds for every address except SimDuplicateEmail.
func (s *Simulator) Signup(ctx context.Context, req SignupRequest) (SignupResult, error) {
	if err := s.delay(ctx); err != nil {
		return SignupResult{}, networkError(err)
	}

	if req.Email == SimDuplicateEmail {
		return SignupResult{Success: false, Message: "이미 가입된 이메일입니다."}, nil
	}
	return SignupResult{
		Success: true,
		Message: "회원가입이 완료되었습니다.",
		User: &User{
			ID:       "user_" + uuid.NewString(),
			Email:    req.Email,
			Nickname: req.Nickname,
		},
	}, nil
}

// Login succeeds only for the SimTestEmail / SimTestPassword pair.
func (s *Simulator) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	if err := s.delay(ctx); err != nil {
		return LoginResult{}, networkError(err)
	}

	if req.Email == SimTestEmail && req.Password == SimTestPassword {
		u := simTestUser
		return LoginResult{Success: true, User: &u, Token: SimToken}, nil
	}
	return LoginResult{Success: false, Message: "이메일 또는 비밀번호가 올바르지 않습니다."}, nil
}

var _ Client = (*Simulator)(nil)
