// Package hist provides the topic-count containers shared by the
// held-out evaluator: a dense global topic histogram, a map-backed
// sparse histogram for accumulating counts, and the ranked type-topic
// row format consumed by the sampler.
package hist

import (
	"encoding/gob"
	"fmt"
	"math"
)

type Hist interface {
	At(topic int) int64
	Inc(topic, count int)
	Dec(topic, count int)
	Len() int

	// ForEach accesses elements in the histogram one-by-one.  For
	// each element <topic, count>, it calls p(topic, count).  If p
	// returns nil, it goes on to the rest elements; otherwise, it
	// stops the traversal and returns the error from p.
	ForEach(p func(topic int, count int64) error) error

	Clone() Hist
}

// Dense is a plain histogram represented by a count array.  It
// represents the global topic counts of a trained model.
type Dense []int64

func init() {
	gob.Register(Dense{})
}

func NewDense(dim int) Dense {
	return make(Dense, dim)
}

func (d Dense) At(topic int) int64 {
	return d[topic]
}

func (d Dense) Inc(topic, count int) {
	if count < 0 {
		panic(fmt.Sprintf("count (%d) is negative", count))
	}
	if d[topic] >= math.MaxInt64-int64(count) {
		panic(fmt.Sprintf("d[%d] = %d overflow", topic, d[topic]))
	}
	d[topic] += int64(count)
}

func (d Dense) Dec(topic, count int) {
	if count < 0 {
		panic(fmt.Sprintf("count (%d) is negative", count))
	}
	d[topic] -= int64(count)
}

func (d Dense) Len() int {
	return len(d)
}

func (d Dense) ForEach(p func(topic int, count int64) error) error {
	for i, v := range d {
		if e := p(i, v); e != nil {
			return e
		}
	}
	return nil
}

func (d Dense) Clone() Hist {
	n := NewDense(d.Len())
	copy(n, d)
	return n
}
