package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabularyLoad(t *testing.T) {
	v := NewVocabulary()
	e := v.Load(strings.NewReader("apple 100\norange\twhatever\n\ncat\ntiger"))
	assert.NoError(t, e)
	assert.Equal(t, 4, v.Len())

	// Ids are a permutation of [0, Len) and round-trip through Token.
	seen := make(map[int32]bool)
	for _, tok := range []string{"apple", "orange", "cat", "tiger"} {
		id := v.Id(tok)
		assert.True(t, id >= 0 && int(id) < v.Len(), "id of %q out of range", tok)
		assert.Equal(t, tok, v.Token(id))
		seen[id] = true
	}
	assert.Len(t, seen, 4)
}

func TestVocabularyUnknownToken(t *testing.T) {
	v := NewVocabulary()
	assert.NoError(t, v.Load(strings.NewReader("apple")))
	assert.Equal(t, int32(-1), v.Id("durian"))
}

func TestVocabularyHashOrderIsStable(t *testing.T) {
	a, b := NewVocabulary(), NewVocabulary()
	assert.NoError(t, a.Load(strings.NewReader("x\ny\nz")))
	assert.NoError(t, b.Load(strings.NewReader("z\nx\ny")))
	assert.Equal(t, a.Tokens, b.Tokens)
}
