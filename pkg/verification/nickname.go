package verification

import (
	"context"
	"sync"
	"time"

	"github.com/modusplant/plantkit/pkg/authapi"
)

// NicknameStatus is the state of the nickname availability flow.
type NicknameStatus string

const (
	// NicknameUnchecked: the current nickname has no availability result.
	NicknameUnchecked NicknameStatus = "unchecked"
	// NicknameChecked: the server answered for the current nickname.
	NicknameChecked NicknameStatus = "checked"
)

// NicknameState is a point-in-time snapshot of the flow for rendering.
// Available is meaningful only when IsChecked is true.
type NicknameState struct {
	Nickname    string
	IsChecked   bool
	Available   bool
	LastChecked string
}

// CheckFunc receives the outcome of a debounced availability check. It is
// not called for checks that a newer edit superseded.
type CheckFunc func(authapi.NicknameCheckResult, error)

// NicknameFlow drives nickname availability checking with debounce support.
// Safe for concurrent use; Close it on teardown.
type NicknameFlow struct {
	client authapi.Client

	mu          sync.Mutex
	status      NicknameStatus
	nickname    string
	available   bool
	lastChecked string
	seq         uint64
	debounce    *time.Timer
	closed      bool
}

// NewNicknameFlow creates an unchecked flow bound to the given API client.
func NewNicknameFlow(client authapi.Client) *NicknameFlow {
	return &NicknameFlow{
		client: client,
		status: NicknameUnchecked,
	}
}

// SetNickname records an edit of the nickname input. Any change resets the
// flow to unchecked, cancels a pending debounced check and invalidates
// in-flight responses.
func (f *NicknameFlow) SetNickname(nickname string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.nickname == nickname {
		return
	}
	f.nickname = nickname
	f.status = NicknameUnchecked
	f.available = false
	f.seq++
	f.cancelDebounceLocked()
}

func (f *NicknameFlow) cancelDebounceLocked() {
	if f.debounce != nil {
		f.debounce.Stop()
		f.debounce = nil
	}
}

// Check asks the server whether the current nickname is available and moves
// the flow to checked on a successful answer. The server applies the
// reserved-name blocklist; taken names are a business outcome in the result,
// not an error.
func (f *NicknameFlow) Check(ctx context.Context) (authapi.NicknameCheckResult, error) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return authapi.NicknameCheckResult{}, ErrClosed
	}
	seq := f.seq
	nickname := f.nickname
	f.mu.Unlock()

	res, err := f.client.CheckNickname(ctx, nickname)

	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.seq || f.closed {
		return res, ErrSuperseded
	}
	if err != nil || !res.Success {
		// Transport or server failure: the nickname stays unchecked.
		f.status = NicknameUnchecked
		return res, err
	}

	f.status = NicknameChecked
	f.available = res.Available
	f.lastChecked = nickname
	return res, nil
}

// DebouncedCheck schedules Check after delay, replacing any pending
// schedule. At most one check is in flight per burst of edits; fn receives
// the outcome unless a newer edit supersedes it first.
func (f *NicknameFlow) DebouncedCheck(ctx context.Context, delay time.Duration, fn CheckFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.cancelDebounceLocked()

	seq := f.seq
	f.debounce = time.AfterFunc(delay, func() {
		f.mu.Lock()
		stale := f.closed || seq != f.seq
		f.debounce = nil
		f.mu.Unlock()
		if stale {
			return
		}

		res, err := f.Check(ctx)
		if err == ErrSuperseded || fn == nil {
			return
		}
		fn(res, err)
	})
}

// Status returns the current state.
func (f *NicknameFlow) Status() NicknameStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Checked reports whether the current nickname has an availability answer.
func (f *NicknameFlow) Checked() bool {
	return f.Status() == NicknameChecked
}

// Available reports whether the current nickname was answered as available.
// Only meaningful when Checked is true.
func (f *NicknameFlow) Available() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status == NicknameChecked && f.available
}

// State returns a snapshot for rendering.
func (f *NicknameFlow) State() NicknameState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return NicknameState{
		Nickname:    f.nickname,
		IsChecked:   f.status == NicknameChecked,
		Available:   f.available,
		LastChecked: f.lastChecked,
	}
}

// Close cancels any pending debounced check and invalidates in-flight
// responses. The flow is unusable afterwards.
func (f *NicknameFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.seq++
	f.cancelDebounceLocked()
}
