// Package httpserver wraps http.Server with graceful shutdown, environment
// configuration and structured logging.
//
// Run blocks until the context is canceled, an interrupt signal arrives or
// the listener fails; in the first two cases in-flight requests get
// ShutdownTimeout to finish. Configuration comes from functional options or,
// via NewFromConfig, from HTTP_* environment variables.
//
// # Usage
//
//	var cfg httpserver.Config
//	if err := env.Parse(&cfg); err != nil { ... }
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil { ... }
package httpserver
