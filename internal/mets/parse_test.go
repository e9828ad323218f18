package mets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/metsgen/internal/mets/metstest"
)

func roundTrip(t *testing.T, doc *Document) metstest.Document {
	t.Helper()
	data, err := Marshal(doc)
	require.NoError(t, err)
	return metstest.Parse(t, data)
}
