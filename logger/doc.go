// Package logger provides structured logging for pipekit applications
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.WithComponent("producer")
//	log.Info("item enqueued", logger.Fields("queue_size", 3))
package logger
