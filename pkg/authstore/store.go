package authstore

import (
	"sync"
	"time"

	"github.com/modusplant/plantkit/pkg/authapi"
)

// PasswordResetHintThreshold is the number of consecutive failed logins after
// which the UI should suggest a password reset.
const PasswordResetHintThreshold = 3

// Snapshot is an immutable copy of the store state. LastAttemptAt is the
// time of the most recent failed login, zero when there is none.
type Snapshot struct {
	User            *authapi.User
	IsAuthenticated bool
	RememberMe      bool
	LoginAttempts   int
	LastAttemptAt   time.Time
}

// Subscriber receives a snapshot after every state change.
type Subscriber func(Snapshot)

// Store holds the client auth state. Safe for concurrent use.
type Store struct {
	persister Persister

	mu            sync.Mutex
	user          *authapi.User
	authenticated bool
	rememberMe    bool
	attempts      int
	lastAttemptAt time.Time
	subscribers   map[int]Subscriber
	nextSubID     int

	now func() time.Time
}

// New creates a store hydrated from the persister. A missing, corrupt or
// unknown-version blob yields a signed-out store; only read errors fail.
func New(persister Persister) (*Store, error) {
	s := &Store{
		persister:   persister,
		subscribers: make(map[int]Subscriber),
		now:         time.Now,
	}

	state, found, err := persister.Load()
	if err != nil {
		return nil, err
	}
	if found && state.IsAuthenticated && state.User != nil {
		u := *state.User
		s.user = &u
		s.authenticated = true
		s.rememberMe = true
	}
	return s, nil
}

// Login records a successful authentication and resets the attempt tracking.
// With rememberMe the session is saved for the next run; without it any
// previously saved session is wiped so the login lasts only this run.
func (s *Store) Login(user authapi.User, rememberMe bool) error {
	s.mu.Lock()
	u := user
	s.user = &u
	s.authenticated = true
	s.rememberMe = rememberMe
	s.attempts = 0
	s.lastAttemptAt = time.Time{}
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	var err error
	if rememberMe {
		err = s.persister.Save(PersistedState{
			Version:         persistVersion,
			User:            &user,
			IsAuthenticated: true,
		})
	} else {
		err = s.persister.Clear()
	}

	notify(subs, snap)
	return err
}

// Logout clears the session, the attempt tracking and the saved blob.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.rememberMe = false
	s.attempts = 0
	s.lastAttemptAt = time.Time{}
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	err := s.persister.Clear()
	notify(subs, snap)
	return err
}

// IncrementLoginAttempts counts one failed login, stamps the attempt time
// and returns the new total. The tracking lives only in memory.
func (s *Store) IncrementLoginAttempts() int {
	s.mu.Lock()
	s.attempts++
	s.lastAttemptAt = s.now()
	attempts := s.attempts
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)
	return attempts
}

// ResetLoginAttempts zeroes the failed-login counter and clears the attempt
// timestamp.
func (s *Store) ResetLoginAttempts() {
	s.mu.Lock()
	s.attempts = 0
	s.lastAttemptAt = time.Time{}
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

// IsLoginBlocked reports whether further login attempts are refused. Always
// false for now: the counter only drives the reset hint, lockout policy is
// the server's.
func (s *Store) IsLoginBlocked() bool {
	return false
}

// ShouldSuggestReset reports whether enough logins failed in a row that the
// UI should point at password reset.
func (s *Store) ShouldSuggestReset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts >= PasswordResetHintThreshold
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn for state-change notifications and returns its
// unsubscribe function. fn is called synchronously from the mutating
// goroutine and must not call back into the store.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		IsAuthenticated: s.authenticated,
		RememberMe:      s.rememberMe,
		LoginAttempts:   s.attempts,
		LastAttemptAt:   s.lastAttemptAt,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

func (s *Store) subscribersLocked() []Subscriber {
	subs := make([]Subscriber, 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []Subscriber, snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
