package domain

import (
	"fmt"
	"net/http"
)

// ValidationError marks malformed caller input. It is raised before any
// upstream call is made and maps to a 400 at the HTTP boundary.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ConfigurationError marks a missing or unusable server-side setting, such
// as the upstream API credential. Operator-correctable, maps to a 500.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// UpstreamError carries a non-success status from the upstream API. The
// layer that raised it decides whether it is retryable; everywhere else it
// propagates unmodified.
type UpstreamError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: upstream returned %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: upstream returned %d", e.Op, e.StatusCode)
}

// RateLimited reports whether the upstream throttled the request. Only the
// history fetcher retries on this; it never reaches the HTTP boundary from
// that path.
func (e *UpstreamError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}
