// Package corpus prepares held-out documents for evaluation: it maps
// token strings to type ids through a vocabulary and segments raw
// text into tokens.
package corpus

import (
	"bufio"
	"fmt"
	"hash/fnv"
	"io"
	"sort"
	"strings"
)

// Vocabulary maintains the bi-directional mapping between tokens and
// type ids.  Ids are in [0, N) where N is the vocabulary size, and
// follow the ascending order of token FNV-1a hashes with lexical
// order as the tie-break.  The hash order shuffles frequent and
// long-tail tokens, so the mapping matches models trained on
// hash-balanced vocabulary shards.
type Vocabulary struct {
	Tokens []string
	ids    map[string]int
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{Tokens: make([]string, 0)}
}

// Load reads one token per line, taking only the first column of
// each line, then fixes ids by the hash order.
func (v *Vocabulary) Load(reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		fs := strings.Fields(scanner.Text())
		if len(fs) > 0 {
			v.Tokens = append(v.Tokens, fs[0])
		}
	}
	if e := scanner.Err(); e != nil {
		return e
	}

	sort.Slice(v.Tokens, func(i, j int) bool {
		l, r := fingerprint(v.Tokens[i]), fingerprint(v.Tokens[j])
		if l == r {
			return v.Tokens[i] < v.Tokens[j]
		}
		return l < r
	})
	v.buildIdMap()
	return nil
}

func fingerprint(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

func (v *Vocabulary) buildIdMap() {
	v.ids = make(map[string]int)
	for i := range v.Tokens {
		v.ids[v.Tokens[i]] = i
	}
}

func (v *Vocabulary) Len() int {
	return len(v.Tokens)
}

func (v *Vocabulary) Token(id int32) string {
	if int(id) < 0 || int(id) >= len(v.Tokens) {
		panic(fmt.Sprintf("id=%d out of range [0, %d)", id, len(v.Tokens)))
	}
	return v.Tokens[id]
}

// Id returns the type id of token, or a negative value for tokens
// outside the vocabulary.
func (v *Vocabulary) Id(token string) int32 {
	if v.ids == nil {
		v.buildIdMap()
	}
	if id, ok := v.ids[token]; ok {
		return int32(id)
	}
	return -1
}
