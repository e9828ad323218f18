package ingest

import (
	"fmt"

	"github.com/vvka-141/metsgen/pkg/metsgen"
)

// InputError describes a JSON document that could not be interpreted.
type InputError struct {
	Source  string // File path or URL the document came from
	Field   string // Offending field, if known
	Message string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed input in %s [field: %s]: %s", e.Source, e.Field, e.Message)
	}
	return fmt.Sprintf("malformed input in %s: %s", e.Source, e.Message)
}

// Unwrap lets callers match metsgen.ErrMalformedInput with errors.Is.
func (e *InputError) Unwrap() error {
	return metsgen.ErrMalformedInput
}
