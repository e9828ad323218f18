package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNodeIDs(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"single", []string{"12"}, []string{"12"}},
		{"keeps order", []string{"15", "12"}, []string{"15", "12"}},
		{"trims whitespace", []string{" 12", "15 "}, []string{"12", "15"}},
		{"drops empties", []string{"12", "", " "}, []string{"12"}},
		{"splits quoted list", []string{"12, 15,"}, []string{"12", "15"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeNodeIDs(tt.raw))
		})
	}
}
