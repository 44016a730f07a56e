package heldout

import (
	"fmt"
	"testing"

	"github.com/latentlab/egret/core/hist"
)

func TestNewModelValidation(t *testing.T) {
	alpha := []float64{0.5, 0.5}
	global := hist.Dense{10, 10}
	rows := []hist.Ranked{{5, 5}, {0, 0}}

	if _, e := NewModel(nil, 0.01, hist.Dense{}, nil); e == nil {
		t.Error("Expected error for zero topics")
	}
	if _, e := NewModel(alpha, 0.0, global, rows); e == nil {
		t.Error("Expected error for non-positive word prior")
	}
	if _, e := NewModel([]float64{0.5, 0.0}, 0.01, global, rows); e == nil {
		t.Error("Expected error for non-positive topic prior")
	}
	if _, e := NewModel(alpha, 0.01, hist.Dense{10}, rows); e == nil {
		t.Error("Expected error for mis-sized global hist")
	}
	if _, e := NewModel(alpha, 0.01, hist.Dense{10, -1}, rows); e == nil {
		t.Error("Expected error for negative global count")
	}
	if _, e := NewModel(alpha, 0.01, global,
		[]hist.Ranked{{1, 3}, {0, 0}}); e == nil {
		t.Error("Expected error for ascending row prefix")
	}
	if _, e := NewModel(alpha, 0.01, global,
		[]hist.Ranked{{5, 5, 1}, {0, 0}}); e == nil {
		t.Error("Expected error for mis-sized row")
	}

	m, e := NewModel(alpha, 0.01, global, rows)
	if e != nil {
		t.Fatalf("Valid model rejected: %v", e)
	}
	if m.NumTopics() != 2 || m.VocabSize() != 2 {
		t.Errorf("Expected 2 topics and 2 types, got %d and %d",
			m.NumTopics(), m.VocabSize())
	}
}

func TestNewModelSums(t *testing.T) {
	m := CreateTestingModel()
	if s := fmt.Sprint(m.TopicPriorSum, m.WordPriorSum); s != "1 0.02" {
		t.Errorf("Expected sums 1 0.02, got %s", s)
	}
}

func TestNewModelFromHists(t *testing.T) {
	m, e := NewModelFromHists([]float64{0.5, 0.5, 0.5}, 0.01,
		hist.Dense{3, 2, 1},
		[]hist.Hist{
			hist.Sparse{0: 1, 2: 4},
			nil,
			hist.Sparse{1: 2},
		})
	if e != nil {
		t.Fatalf("NewModelFromHists: %v", e)
	}
	truth := "[[4 1 0] [0 0 0] [2 0 0]]"
	got := fmt.Sprint([]hist.Ranked{
		m.TypeTopicRows[0], m.TypeTopicRows[1], m.TypeTopicRows[2]})
	// Compare raw slot contents, not the pretty printer.
	raw := fmt.Sprint([][]int32{
		m.TypeTopicRows[0], m.TypeTopicRows[1], m.TypeTopicRows[2]})
	if raw != truth {
		t.Errorf("Expected rows %s, got %s (%s)", truth, raw, got)
	}
}
