package repository

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vvka-141/metsgen/pkg/metsgen"
)

// StatusError reports a response other than 200 OK.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string        // leading bytes of the response body
	Wait       time.Duration // from Retry-After; zero when absent
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	msg := fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// HTTPStatus exposes the status code to retry classification.
func (e *StatusError) HTTPStatus() int {
	return e.StatusCode
}

// RetryAfter exposes the Retry-After delay to the retry executor.
func (e *StatusError) RetryAfter() time.Duration {
	return e.Wait
}

// Unwrap lets callers match metsgen.ErrFetchFailed with errors.Is.
func (e *StatusError) Unwrap() error {
	return metsgen.ErrFetchFailed
}

// parseRetryAfter reads a Retry-After header given either as delay-seconds
// or as an HTTP date. Invalid and past values yield zero.
func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}

var _ metsgen.RetryAfterHint = (*StatusError)(nil)
