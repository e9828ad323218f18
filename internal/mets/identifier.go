package mets

import (
	"github.com/google/uuid"

	"github.com/vvka-141/metsgen/pkg/metsgen"
)

// IdentifierScheme derives element identifiers and ARKs from UUIDs.
type IdentifierScheme struct {
	// Prefix keeps element IDs from starting with a digit, which XML IDs
	// (NCNames) may not do.
	Prefix string

	// NamingAuthority is the ARK NAAN.
	NamingAuthority string
}

// NewIdentifierScheme returns the scheme used by mode. An empty naming
// authority falls back to metsgen.DefaultNamingAuthority.
func NewIdentifierScheme(mode metsgen.Mode, namingAuthority string) IdentifierScheme {
	if namingAuthority == "" {
		namingAuthority = metsgen.DefaultNamingAuthority
	}
	return IdentifierScheme{
		Prefix:          mode.IDPrefix(),
		NamingAuthority: namingAuthority,
	}
}

// ElementID returns the file ID for a UUID.
func (s IdentifierScheme) ElementID(id string) string {
	return s.Prefix + id
}

// ARK returns the persistent identifier for a UUID.
func (s IdentifierScheme) ARK(id string) string {
	return "ark:/" + s.NamingAuthority + "/" + id
}

// IsRFC4122 reports whether id parses as a UUID. Identifiers are never
// rejected; failures are reported in metsgen.ObjectSummary.NonStandardUUIDs.
func IsRFC4122(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
