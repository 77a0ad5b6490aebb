// Package logger provides a structured logging facility based on Zap.
//
// It builds a configured logger for the service (development config when the
// level is "debug", production otherwise) and integrates with Fiber so that
// request-scoped logs carry the request's RayID.
//
// # Configuration
//
//   - Level: debug, info, warn, error (LOG_LEVEL)
//   - Format: json or console (LOG_FORMAT)
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server running")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
