package mets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/metsgen/pkg/metsgen"
)

func TestIdentifierScheme_Modes(t *testing.T) {
	local := NewIdentifierScheme(metsgen.ModeLocal, "")
	fetch := NewIdentifierScheme(metsgen.ModeFetch, "")

	assert.Equal(t, "id-abc-123", local.ElementID("abc-123"))
	assert.Equal(t, "uuid_abc-123", fetch.ElementID("abc-123"))
	assert.Equal(t, "ark:/19837/abc-123", local.ARK("abc-123"))
	assert.Equal(t, local.ARK("abc-123"), fetch.ARK("abc-123"))
}

func TestIdentifierScheme_Deterministic(t *testing.T) {
	s := NewIdentifierScheme(metsgen.ModeLocal, "12345")
	id := "4f1c2b3a-1d2e-4f5a-8b9c-0d1e2f3a4b5c"

	assert.Equal(t, s.ElementID(id), s.ElementID(id))
	assert.Equal(t, s.ARK(id), s.ARK(id))
	assert.Equal(t, "ark:/12345/"+id, s.ARK(id))
}

func TestIdentifierScheme_MalformedPassesThrough(t *testing.T) {
	s := NewIdentifierScheme(metsgen.ModeLocal, "")
	assert.Equal(t, "id-1 not/a uuid", s.ElementID("1 not/a uuid"))
	assert.Equal(t, "id-", s.ElementID(""))
}

func TestIsRFC4122(t *testing.T) {
	assert.True(t, IsRFC4122("4f1c2b3a-1d2e-4f5a-8b9c-0d1e2f3a4b5c"))
	assert.False(t, IsRFC4122("abc-123"))
	assert.False(t, IsRFC4122(""))
}
