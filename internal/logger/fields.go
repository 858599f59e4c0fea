package logger

import (
	"log/slog"
	"time"
)

// Standard field keys for structured logging.
// Use these keys consistently across all log statements.
const (
	KeyTraceID = "trace_id" // OpenTelemetry trace ID for request correlation
	KeySpanID  = "span_id"  // OpenTelemetry span ID

	KeyService   = "service"    // Target service name
	KeyVerb      = "verb"       // Command verb
	KeyMethod    = "method"     // HTTP method
	KeyURL       = "url"        // Request URL
	KeyStatus    = "status"     // HTTP status code
	KeyRequestID = "request_id" // X-Request-ID header value
	KeyItem      = "item"       // 1-based position of an item in a batch
	KeyTotal     = "total"      // Number of items in a batch
	KeyFile      = "file"       // Input file path
	KeyBytes     = "bytes"      // Body size in bytes

	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
	KeyError      = "error"       // Error message
	KeyErrorCode  = "error_code"  // API error code
)

// Method returns a slog.Attr for an HTTP method
func Method(m string) slog.Attr {
	return slog.String(KeyMethod, m)
}

// URL returns a slog.Attr for a request URL
func URL(u string) slog.Attr {
	return slog.String(KeyURL, u)
}

// Status returns a slog.Attr for an HTTP status code
func Status(code int) slog.Attr {
	return slog.Int(KeyStatus, code)
}

// RequestID returns a slog.Attr for the request ID
func RequestID(id string) slog.Attr {
	return slog.String(KeyRequestID, id)
}

// File returns a slog.Attr for an input file path
func File(path string) slog.Attr {
	return slog.String(KeyFile, path)
}

// Bytes returns a slog.Attr for a body size
func Bytes(n int) slog.Attr {
	return slog.Int(KeyBytes, n)
}

// ErrorCode returns a slog.Attr for an API error code
func ErrorCode(code string) slog.Attr {
	return slog.String(KeyErrorCode, code)
}

// Err returns a slog.Attr for an error (empty attr for nil)
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// DurationMs returns a slog.Attr for a duration in milliseconds
func DurationMs(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMs, float64(d.Microseconds())/1000.0)
}
