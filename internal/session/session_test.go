package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionIDsAreUniqueAndOpaque(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := New()
		assert.NotEmpty(t, s.ID)
		assert.False(t, seen[s.ID], "duplicate session id %s", s.ID)
		seen[s.ID] = true
	}
}
