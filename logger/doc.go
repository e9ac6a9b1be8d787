// Package logger provides structured logging for errkit services
// using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers. ErrorChainFields renders an error together
// with every cause beneath it, which is how the error handler records a
// failure before answering the client.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg.Logging, "users-api").WithComponent("http")
//	log.Warn("request failed", logger.ErrorChainFields(err))
package logger
