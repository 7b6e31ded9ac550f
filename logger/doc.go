// Package logger provides structured logging for dinjector using zerolog.
//
// It supports JSON and console output, level configuration and
// component-scoped loggers. Fields are passed as maps so call sites stay
// free of zerolog's builder API.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("billing").WithComponent("appcontext")
//	log.Info("context ready", logger.Fields("mappings", 12))
package logger
