package heldout

import (
	"fmt"

	"github.com/latentlab/egret/core/hist"
)

const (
	testingK     = 2
	testingV     = 5
	testingAlpha = 0.5
	testingBeta  = 0.01
)

// CreateTestingModel creates a two-topic model with:
//  symmetric topic prior: 0.5
//  symmetric word prior:  0.01
//  global topic counts:   [10 10]
//  type-topic rows:       type 0 = [5 5], all other types empty
func CreateTestingModel() *Model {
	rows := make([]hist.Ranked, testingV)
	for w := range rows {
		rows[w] = hist.NewRanked(testingK)
	}
	copy(rows[0], []int32{5, 5})

	m, e := NewModel([]float64{testingAlpha, testingAlpha}, testingBeta,
		hist.Dense{10, 10}, rows)
	if e != nil {
		panic(fmt.Sprintf("CreateTestingModel: %v", e))
	}
	return m
}

// CreateTrivialModel creates the one-topic, one-type model under
// which every word probability is exactly 1.
func CreateTrivialModel() *Model {
	m, e := NewModel([]float64{1.0}, 1.0,
		hist.Dense{0}, []hist.Ranked{hist.NewRanked(1)})
	if e != nil {
		panic(fmt.Sprintf("CreateTrivialModel: %v", e))
	}
	return m
}

// scripted returns a Uniform that replays vals cyclically.
func scripted(vals ...float64) Uniform {
	i := 0
	return func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	}
}
