// Package sl provides small slog helpers shared by every component that logs.
package sl

import "log/slog"

// Err wraps an error into a slog attribute named "error", the way every log
// call site in this repository reports a failure.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
