package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "abc", Normalize("ABC"))
	// NFKC folds the ligature before lowercasing.
	assert.Equal(t, "ffi", Normalize("ﬃ"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"left", "to", "right", "2024"},
		Tokenize("left-to-right, 2024!"))
	assert.Empty(t, Tokenize("... !!"))
}
