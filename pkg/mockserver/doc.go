// Package mockserver is an in-process HTTP stand-in for the real backend,
// serving the auth and post listing endpoints with the same canned outcomes
// the client simulators use.
//
// It exists for two jobs: running the UI against a local backend during
// development, and asserting in tests that the HTTP clients and the
// simulators agree on the wire contract. State is volatile: accounts created
// through signup live in memory with bcrypt password hashes and vanish on
// restart. A test account (test@modusplant.com / Test123!) is pre-seeded.
//
// # Usage
//
//	srv := mockserver.New(mockserver.WithLogger(log))
//	err := httpserver.New(httpserver.WithAddr(":8080")).Run(ctx, srv.Router())
package mockserver
