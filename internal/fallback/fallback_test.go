package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	assert.Equal(t, "a", First("a", "b"))
	assert.Equal(t, "b", First("", "b", "c"))
	assert.Equal(t, "", First("", ""))
	assert.Equal(t, "", First())
}

func TestTexts(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, Texts("a", "", "c"))
	assert.Empty(t, Texts("", ""))
	assert.Empty(t, Texts())
	// Order of surviving candidates is preserved.
	assert.Equal(t, []string{"z", "a"}, Texts("", "z", "", "a"))
}
