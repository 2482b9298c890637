// Package logger provides structured logging for flowkit using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
// The event bus, pipeline, and stream driver all report through loggers
// from this package.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("event.bus")
//	log.Info("handler registered", logger.Fields(logger.FieldEventType, "user.created"))
package logger
