// Package obs provides optional structured tracing of container
// inserts (the new size, plus the bucket count for hash containers),
// backed by zap. It is off by default (SetLogger is
// never called by the container package itself) so normal operation
// pays no logging cost, matching the ambient logging stack carried by
// the wider example corpus (cockroachdb/cockroach, kubernetes,
// sing-box all ship zap).
package obs

import "go.uber.org/zap"

var logger *zap.Logger

// SetLogger installs l as the package-wide debug logger. Passing nil
// disables tracing.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Enabled reports whether a logger has been installed, so callers on
// a hot path can skip building fields for a Debug call that would be
// discarded anyway.
func Enabled() bool { return logger != nil }

// Debug emits a structured trace event if a logger has been
// installed; it is a no-op otherwise.
func Debug(msg string, fields ...zap.Field) {
	if logger == nil {
		return
	}
	logger.Debug(msg, fields...)
}
