// Package logger is a thin factory over log/slog with functional options and
// environment-driven configuration.
//
// New builds a *slog.Logger from Option values: output format (text or json),
// minimum level, destination writer and static attributes. NewFromEnv reads
// the same knobs from LOG_LEVEL and LOG_FORMAT so binaries configure logging
// the same way they configure everything else.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("mockserver"),
//	)
//	logger.SetAsDefault(log)
//
//	log.Info("listening", slog.String("addr", addr))
package logger
