package verification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/modusplant/plantkit/pkg/authapi"
)

// EmailStatus is the state of the email verification flow.
type EmailStatus string

const (
	// EmailIdle: no active verification request.
	EmailIdle EmailStatus = "idle"
	// EmailRequested: a code was sent and the countdown is running.
	EmailRequested EmailStatus = "requested"
	// EmailVerified: the address is proven; editing the email revokes this.
	EmailVerified EmailStatus = "verified"
)

// EmailState is a point-in-time snapshot of the flow for rendering.
type EmailState struct {
	Email            string
	Requested        bool
	Code             string
	IsVerified       bool
	ExpiresInSeconds int
	LastRequestedAt  time.Time
}

// EmailFlow drives email ownership verification. Safe for concurrent use;
// create one per signup session and Close it on teardown.
type EmailFlow struct {
	client authapi.Client

	mu              sync.Mutex
	status          EmailStatus
	email           string
	code            string
	expiresAt       time.Time
	lastRequestedAt time.Time
	seq             uint64
	expiryTimer     *time.Timer
	closed          bool

	now func() time.Time
}

// EmailFlowOption configures an EmailFlow.
type EmailFlowOption func(*EmailFlow)

// WithEmailClock overrides the flow's clock. Tests use this to drive the
// countdown without sleeping.
func WithEmailClock(now func() time.Time) EmailFlowOption {
	return func(f *EmailFlow) {
		if now != nil {
			f.now = now
		}
	}
}

// NewEmailFlow creates an idle flow bound to the given API client.
func NewEmailFlow(client authapi.Client, opts ...EmailFlowOption) *EmailFlow {
	f := &EmailFlow{
		client: client,
		status: EmailIdle,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetEmail records an edit of the email input. Any change invalidates the
// current state: requested or verified drops back to idle, the entered code
// is cleared, the countdown stops, and in-flight responses become stale.
func (f *EmailFlow) SetEmail(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.email == email {
		return
	}
	f.email = email
	f.resetLocked()
}

// resetLocked returns the flow to idle. Callers hold f.mu.
func (f *EmailFlow) resetLocked() {
	f.status = EmailIdle
	f.code = ""
	f.expiresAt = time.Time{}
	f.seq++
	f.stopTimerLocked()
}

func (f *EmailFlow) stopTimerLocked() {
	if f.expiryTimer != nil {
		f.expiryTimer.Stop()
		f.expiryTimer = nil
	}
}

// Request asks the server to send a verification code to the current email.
// Allowed from idle and from requested (resend); a verified flow refuses
// with ErrAlreadyVerified until the email is edited. A request failure keeps
// or returns the flow to idle; the server's outcome is in the result.
func (f *EmailFlow) Request(ctx context.Context) (authapi.EmailVerificationResult, error) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return authapi.EmailVerificationResult{}, ErrClosed
	}
	if f.status == EmailVerified {
		f.mu.Unlock()
		return authapi.EmailVerificationResult{}, ErrAlreadyVerified
	}
	f.seq++
	seq := f.seq
	email := f.email
	f.mu.Unlock()

	res, err := f.client.RequestEmailVerification(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.seq || f.closed {
		return res, ErrSuperseded
	}

	if err != nil || !res.Success {
		f.status = EmailIdle
		f.code = ""
		f.expiresAt = time.Time{}
		f.stopTimerLocked()
		return res, err
	}

	f.status = EmailRequested
	f.code = ""
	f.lastRequestedAt = f.now()
	f.expiresAt = f.lastRequestedAt.Add(time.Duration(res.ExpiresIn) * time.Second)
	f.stopTimerLocked()
	f.expiryTimer = time.AfterFunc(time.Duration(res.ExpiresIn)*time.Second, func() {
		f.expire(seq)
	})
	return res, nil
}

// expire fires when the countdown of request seq runs out.
func (f *EmailFlow) expire(seq uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seq != seq || f.status != EmailRequested {
		return
	}
	f.status = EmailIdle
	f.code = ""
	f.expiresAt = time.Time{}
	f.expiryTimer = nil
}

// Verify submits the entered code. Requires an active request; success moves
// the flow to verified, a wrong code keeps it at requested with the server's
// message in the result. There is no automatic retry. A code submitted right
// as the countdown runs out gets ErrCodeExpired and the flow drops to idle.
func (f *EmailFlow) Verify(ctx context.Context, code string) (authapi.CodeVerificationResult, error) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return authapi.CodeVerificationResult{}, ErrClosed
	}
	if f.expireIfDueLocked() {
		f.mu.Unlock()
		return authapi.CodeVerificationResult{}, ErrCodeExpired
	}
	if f.status == EmailVerified {
		f.mu.Unlock()
		return authapi.CodeVerificationResult{}, ErrAlreadyVerified
	}
	if f.status != EmailRequested {
		f.mu.Unlock()
		return authapi.CodeVerificationResult{}, ErrNotRequested
	}
	f.code = code
	seq := f.seq
	email := f.email
	f.mu.Unlock()

	res, err := f.client.VerifyEmailCode(ctx, email, code)

	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.seq || f.closed {
		return res, ErrSuperseded
	}
	if err != nil || !res.Success {
		// Wrong code: stay at requested so the user may retry manually.
		return res, err
	}

	f.status = EmailVerified
	f.expiresAt = time.Time{}
	f.stopTimerLocked()
	return res, nil
}

// expireIfDueLocked applies a due expiry that the timer has not delivered
// yet (e.g. under an injected clock) and reports whether it fired now.
// Callers hold f.mu.
func (f *EmailFlow) expireIfDueLocked() bool {
	if f.status == EmailRequested && !f.expiresAt.IsZero() && !f.now().Before(f.expiresAt) {
		f.status = EmailIdle
		f.code = ""
		f.expiresAt = time.Time{}
		f.stopTimerLocked()
		return true
	}
	return false
}

// Status returns the current state, applying a due expiry first.
func (f *EmailFlow) Status() EmailStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expireIfDueLocked()
	return f.status
}

// Verified reports whether the current email is proven.
func (f *EmailFlow) Verified() bool {
	return f.Status() == EmailVerified
}

// Email returns the email the flow currently tracks.
func (f *EmailFlow) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

// RemainingSeconds returns the countdown in whole seconds, rounded up so the
// display never shows 0:00 while the code is still accepted. Zero outside
// the requested state.
func (f *EmailFlow) RemainingSeconds() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expireIfDueLocked()

	if f.status != EmailRequested {
		return 0
	}
	remaining := f.expiresAt.Sub(f.now())
	if remaining <= 0 {
		return 0
	}
	return int((remaining + time.Second - 1) / time.Second)
}

// Countdown returns the remaining time formatted for the UI, e.g. "2:59".
func (f *EmailFlow) Countdown() string {
	return FormatSeconds(f.RemainingSeconds())
}

// State returns a snapshot for rendering.
func (f *EmailFlow) State() EmailState {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expireIfDueLocked()

	st := EmailState{
		Email:           f.email,
		Requested:       f.status == EmailRequested,
		Code:            f.code,
		IsVerified:      f.status == EmailVerified,
		LastRequestedAt: f.lastRequestedAt,
	}
	if f.status == EmailRequested {
		if remaining := f.expiresAt.Sub(f.now()); remaining > 0 {
			st.ExpiresInSeconds = int((remaining + time.Second - 1) / time.Second)
		}
	}
	return st
}

// Close stops the countdown timer and invalidates in-flight responses. The
// flow is unusable afterwards.
func (f *EmailFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.seq++
	f.stopTimerLocked()
}

// FormatSeconds renders a second count as "M:SS" for the countdown label.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
