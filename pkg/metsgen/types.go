package metsgen

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Mode selects where the object metadata comes from.
type Mode int

const (
	// ModeLocal reads node.json and members.json from a directory.
	ModeLocal Mode = iota
	// ModeFetch fetches node and member documents from the repository by ID.
	ModeFetch
)

// String returns the command name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeLocal:
		return "local"
	case ModeFetch:
		return "fetch"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// IDPrefix returns the literal prepended to UUIDs to form element IDs.
// The two modes historically disagree; both prefixes are kept.
func (m Mode) IDPrefix() string {
	if m == ModeFetch {
		return FetchIDPrefix
	}
	return LocalIDPrefix
}

// OutputFileName returns the base name of the METS file for a node.
// nodeID is ignored in local mode.
func (m Mode) OutputFileName(nodeID string) string {
	if m == ModeFetch {
		return nodeID + FetchOutputSuffix
	}
	return LocalOutputFileName
}

// RunConfig contains all parameters needed for one metsgen run.
type RunConfig struct {
	// Mode selects local-file or live-fetch input.
	Mode Mode

	// RepoURL is the base URL of the repository, without a trailing slash.
	RepoURL string

	// MetadataDir holds node.json and members.json (ModeLocal only).
	MetadataDir string

	// NodeIDs are the numeric node IDs to process (ModeFetch only).
	NodeIDs []string

	// OutputDir is where METS files are written. Empty or missing
	// directories fall back to the working directory.
	OutputDir string

	// NamingAuthority is the ARK NAAN used for persistent identifiers.
	NamingAuthority string

	// Strict turns model and parent lookup failures into errors instead of
	// the "invalid url" placeholder.
	Strict bool

	// CacheModels reuses model lookups within the run.
	CacheModels bool

	// Retries is the number of retry attempts for transient HTTP failures.
	Retries int

	// Timeout bounds the entire run once credentials are known. Zero means
	// no deadline.
	Timeout time.Duration

	// SaveJSON writes fetched node and members documents next to the
	// METS output (ModeFetch only).
	SaveJSON bool

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the RunConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *RunConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.RepoURL) == "" {
		errs = append(errs, fmt.Errorf("repository URL is required: %w", ErrInvalidConfig))
	} else if !strings.HasPrefix(c.RepoURL, "http://") && !strings.HasPrefix(c.RepoURL, "https://") {
		errs = append(errs, fmt.Errorf("repository URL %q must start with http:// or https://: %w", c.RepoURL, ErrInvalidConfig))
	}

	switch c.Mode {
	case ModeLocal:
		if c.MetadataDir == "" {
			errs = append(errs, fmt.Errorf("metadata directory is required: %w", ErrInvalidConfig))
		}
		if c.SaveJSON {
			errs = append(errs, fmt.Errorf("saving JSON is only supported when fetching: %w", ErrInvalidConfig))
		}
	case ModeFetch:
		if len(c.NodeIDs) == 0 {
			errs = append(errs, fmt.Errorf("at least one node ID is required: %w", ErrInvalidConfig))
		}
		for _, id := range c.NodeIDs {
			if !isNumericID(id) {
				errs = append(errs, fmt.Errorf("node ID %q must be numeric: %w", id, ErrInvalidConfig))
			}
		}
	default:
		errs = append(errs, fmt.Errorf("unknown mode %s: %w", c.Mode, ErrInvalidConfig))
	}

	if c.NamingAuthority == "" {
		errs = append(errs, fmt.Errorf("naming authority is required: %w", ErrInvalidConfig))
	}

	if c.Retries < 0 {
		errs = append(errs, fmt.Errorf("retries cannot be negative: %w", ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

func isNumericID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ObjectRecord is the part of a repository node document that METS
// generation needs. It is used for the object itself, its members and
// its parents.
type ObjectRecord struct {
	// UUID is the node's UUID, passed through unvalidated.
	UUID string

	// ModelURL is the repository-relative URL of the model taxonomy term.
	ModelURL string

	// MemberOf lists repository-relative URLs of parent nodes, in source order.
	MemberOf []string
}
