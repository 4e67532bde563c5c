// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). CLI runs default to colored console output,
// while the json encoding suits machine-read logs.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("network loaded")
//
//	// In a pass:
//	l := logger.WithComponent(log, "gradient")
//	l.Warn("skipping pipe with unusable geometry", zap.String("pipe", id))
package logger
