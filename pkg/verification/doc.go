// Package verification tracks the two server-backed checks of the signup
// flow as explicit state machines: email ownership (idle → requested →
// verified) and nickname availability (unchecked → checked).
//
// The flows make the implicit UI rules of the product explicit and testable:
// editing the email input drops any requested or verified state back to
// idle, editing the nickname resets its check, the verification-code
// countdown expiring returns the email flow to idle and clears the entered
// code, and a response that arrives after the input changed again is ignored
// by sequence number instead of clobbering newer state (last-write-wins is
// not acceptable here).
//
// # Architecture
//
// Each flow owns a mutex-guarded state record and an authapi.Client. API
// calls run outside the lock with the request sequence captured beforehand;
// the response is applied only when the sequence is still current, otherwise
// ErrSuperseded is returned. Expiry uses a deadline plus a time.AfterFunc
// that is stopped on teardown and on every transition out of requested.
//
// # Usage
//
//	flow := verification.NewEmailFlow(client)
//	defer flow.Close()
//
//	flow.SetEmail("user@example.com")
//	res, err := flow.Request(ctx)          // idle → requested on success
//	res2, err := flow.Verify(ctx, code)    // requested → verified on success
//
//	flow.SetEmail("other@example.com")     // any state → idle
//
// # Error Handling
//
// Illegal transitions surface as sentinel errors (ErrAlreadyVerified,
// ErrNotRequested, ErrCodeExpired, ErrSuperseded). Business outcomes, such as
// the server rejecting a code or reporting a taken nickname, are carried in
// the returned result values, mirroring pkg/authapi.
package verification
