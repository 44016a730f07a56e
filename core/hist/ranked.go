package hist

import (
	"encoding/gob"
	"fmt"
	"sort"
)

// Ranked is the type-topic row format the evaluator samples over: a
// fixed-length row of K counts sorted in descending order before the
// first zero and zero-padded to the end.  The topic of slot i is i,
// so the first zero terminates the non-zero prefix.  This layout is a
// wire-level contract with the training side; do not replace it with
// a mapping-based representation.
type Ranked []int32

func init() {
	gob.Register(Ranked{})
}

func NewRanked(dim int) Ranked {
	return make(Ranked, dim)
}

func (r Ranked) Len() int {
	return len(r)
}

func (r Ranked) At(topic int) int64 {
	return int64(r[topic])
}

// NonZeros returns the length of the non-zero prefix.
func (r Ranked) NonZeros() int {
	n := 0
	for n < len(r) && r[n] > 0 {
		n++
	}
	return n
}

// ForEach visits the non-zero prefix in slot order and stops at the
// first zero.
func (r Ranked) ForEach(p func(topic int, count int64) error) error {
	for i := 0; i < len(r) && r[i] > 0; i++ {
		if e := p(i, int64(r[i])); e != nil {
			return e
		}
	}
	return nil
}

// Validate checks the row contract: no negative count anywhere, and
// counts descending before the first zero.
func (r Ranked) Validate() error {
	for i, c := range r {
		if c < 0 {
			return fmt.Errorf("slot %d holds negative count %d", i, c)
		}
		if i > 0 && c > 0 && c > r[i-1] {
			return fmt.Errorf("slot %d count %d exceeds slot %d count %d",
				i, c, i-1, r[i-1])
		}
	}
	return nil
}

// Assign fills r from an arbitrary histogram: the non-zero counts of
// h are ranked in descending order into the prefix of r, and the
// remaining slots are zeroed.  Topic identities of h do not survive;
// slot order is the topic order of the row.
func (r Ranked) Assign(h Hist) Ranked {
	counts := make([]int32, 0, h.Len())
	h.ForEach(func(_ int, count int64) error {
		if count > 0 {
			counts = append(counts, int32(count))
		}
		return nil
	})
	sort.Slice(counts, func(i, j int) bool { return counts[i] > counts[j] })

	if len(counts) > len(r) {
		panic(fmt.Sprintf("%d non-zeros do not fit a row of %d slots",
			len(counts), len(r)))
	}
	n := copy(r, counts)
	for i := n; i < len(r); i++ {
		r[i] = 0
	}
	return r
}

func (r Ranked) String() string {
	out := "[ "
	for i := 0; i < len(r) && r[i] > 0; i++ {
		out += fmt.Sprintf("%d:%d ", i, r[i])
	}
	out += "]"
	return out
}
