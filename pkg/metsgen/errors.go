package metsgen

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := runner.Run(ctx, cfg)
//	if errors.Is(err, metsgen.ErrFetchFailed) {
//	    // repository unreachable
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFetchFailed indicates a repository request failed or returned a non-200 status.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrModelLookup indicates a model taxonomy term could not be resolved.
	ErrModelLookup = errors.New("model lookup failed")

	// ErrMalformedInput indicates node or members JSON is missing required fields.
	ErrMalformedInput = errors.New("malformed input")

	// ErrCredentials indicates repository credentials could not be obtained.
	ErrCredentials = errors.New("credentials unavailable")

	// ErrOutputFailed indicates the METS document could not be written.
	ErrOutputFailed = errors.New("output failed")
)

// usagePatterns are prefixes cobra and pflag use for command-line misuse.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"required flag",
	"invalid argument",
	"accepts ",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrCredentials):
		return ExitCredentialsError
	case errors.Is(err, ErrMalformedInput):
		return ExitMalformedInput
	case errors.Is(err, ErrFetchFailed), errors.Is(err, ErrModelLookup):
		return ExitFetchFailed
	case errors.Is(err, ErrOutputFailed):
		return ExitOutputFailed
	}

	errStr := err.Error()
	for _, p := range usagePatterns {
		if strings.HasPrefix(errStr, p) {
			return ExitUsageError
		}
	}

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitFetchFailed
	}

	return ExitGeneralError
}
