// Package logger builds the launcher's structured logger on top of Zap.
//
// The structured log is for operators: startup parameters, bridge traffic,
// journal and asset sync outcomes. The human-facing banners printed by the
// start command are written separately and never go through this logger.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (default, colored levels) or json
//
// # Usage
//
//	log, err := logger.New(&cfg.Log)
//	log.Info("Studio started", zap.Int("port", port))
//
//	// Inside a status server handler:
//	l := logger.WithRayID(log, c)
package logger
