// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with console or JSON encoding,
//   - context helpers (ToContext/FromContext/WithName/WithKV/WithFields),
//   - level and format parsing utilities,
//   - convenience functions (Infof, WarnKV, ErrorKV, etc.).
//
// Request handlers store a request-scoped logger in the context so every
// message about a request carries its request id.
package logger
