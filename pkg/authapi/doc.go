// Package authapi is the client for the modusplant auth API: email
// verification, nickname availability, signup and login.
//
// Two interchangeable backends implement the Client interface. HTTPClient
// speaks the real JSON-over-HTTP contract; Simulator reproduces the
// contract in-process with artificial latency and deterministic fixtures so
// front-end work never needs a running server. Selection happens once at
// construction (New with a Config), never at call sites.
//
// # Error Handling
//
// Expected business outcomes (duplicate email, wrong code, taken nickname,
// bad credentials) are values: the result's Success field is false and
// Message carries the user-facing text. Errors are reserved for transport
// failures: non-2xx responses, unreachable hosts and malformed bodies
// surface as *Error with an HTTP status and a machine-readable code. Callers
// branch on Success for the former and errors.As for the latter.
//
// # Usage
//
//	cfg, err := authapi.LoadConfig()
//	if err != nil { ... }
//	client := authapi.New(cfg)
//
//	res, err := client.VerifyEmailCode(ctx, email, code)
//	if err != nil { ... }           // transport failure
//	if !res.Success { ... }         // wrong code, show res.Message
package authapi
