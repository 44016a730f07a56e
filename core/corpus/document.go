package corpus

import (
	"bufio"
	"io"
	"strings"
)

// TypeSequence maps tokens to type ids.  Out-of-vocabulary tokens
// stay in the sequence as -1; the evaluator skips them without
// shifting positions, which keeps per-position marginals aligned with
// the original document.
func TypeSequence(tokens []string, v *Vocabulary) []int32 {
	types := make([]int32, len(tokens))
	for i := range tokens {
		types[i] = v.Id(tokens[i])
	}
	return types
}

// Load reads a token-per-field, document-per-line corpus and maps it
// through the vocabulary.  Blank lines become empty documents and are
// dropped.
func Load(r io.Reader, v *Vocabulary) ([][]int32, error) {
	docs := make([][]int32, 0)
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for s.Scan() {
		tokens := strings.Fields(s.Text())
		if len(tokens) == 0 {
			continue
		}
		docs = append(docs, TypeSequence(tokens, v))
	}
	if e := s.Err(); e != nil {
		return nil, e
	}
	return docs, nil
}
