package verification

import "errors"

var (
	// ErrAlreadyVerified is returned when a code is requested for an email
	// that is already verified; the caller must edit the email first.
	ErrAlreadyVerified = errors.New("verification.already_verified")

	// ErrNotRequested is returned when a code is submitted without an active
	// verification request.
	ErrNotRequested = errors.New("verification.not_requested")

	// ErrCodeExpired is returned when a code is submitted after the
	// countdown ran out; the flow is back at idle.
	ErrCodeExpired = errors.New("verification.code_expired")

	// ErrSuperseded is returned when a response arrives for a request that a
	// newer edit or request has invalidated. The state is untouched.
	ErrSuperseded = errors.New("verification.superseded")

	// ErrClosed is returned when a flow is used after Close.
	ErrClosed = errors.New("verification.closed")
)
