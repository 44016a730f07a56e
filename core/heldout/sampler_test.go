package heldout

import (
	"math"
	"testing"
)

// densePosterior computes the unnormalized posterior over topics the
// slow dense way, for comparison against the bucket decomposition.
func densePosterior(e *Evaluator, s *localState) []float64 {
	k := e.model.NumTopics()
	p := make([]float64, k)
	for t := 0; t < k; t++ {
		denom := float64(e.model.GlobalTopicHist.At(t)) + e.model.WordPriorSum
		var rowCount float64
		if t < s.row.Len() {
			rowCount = float64(s.row.At(t))
		}
		p[t] = (e.model.TopicPrior[t]*e.model.WordPrior +
			float64(s.topicCounts[t])*e.model.WordPrior +
			(e.model.TopicPrior[t]+float64(s.topicCounts[t]))*rowCount) / denom
	}
	return p
}

// newSamplingFixture returns the testing model with one token already
// assigned to topic 1 and topic scores refreshed for type 0.
func newSamplingFixture(u Uniform) (*Evaluator, *localState) {
	m := CreateTestingModel()
	e := NewEvaluator(m, u)
	s := newLocalState(m.NumTopics(), 1)
	e.addTopic(s, 1, 0)
	s.setType(m.TypeTopicRows[0])
	e.updateTopicScores(s)
	return e, s
}

func TestThreeBucketSum(t *testing.T) {
	e, s := newSamplingFixture(nil)
	m := e.smoothingOnlyMass + s.topicBetaMass + s.topicTermMass
	dense := densePosterior(e, s)
	want := 0.0
	for _, p := range dense {
		want += p
	}
	if math.Abs(m-want) > 1e-12 {
		t.Errorf("Bucket masses sum to %v, dense posterior sums to %v", m, want)
	}
}

func TestSampleBucketSelection(t *testing.T) {
	// With global counts [10 10], beta 0.01 and one token on topic 1,
	// the masses are Q = 10/10.02, R = 0.01/10.02, S = 0.01/10.02, so
	// the total is 1 up to rounding.
	for _, c := range []struct {
		u    float64
		want int32
	}{
		{0.0, 0},     // term bucket, first slot
		{0.2, 0},     // term bucket, still inside slot 0's score
		{0.4, 1},     // term bucket, slot 1
		{0.9985, 1},  // topic-beta bucket, only topic 1 has a count
		{0.9995, 0},  // smoothing bucket, topic 0's alpha share
		{0.99999, 1}, // smoothing bucket, tail
	} {
		e, s := newSamplingFixture(scripted(c.u))
		if got := e.sampleNewTopic(s); got != c.want {
			t.Errorf("u = %v: expected topic %d, got %d", c.u, c.want, got)
		}
	}
}

// TestSamplingDistribution draws repeatedly from a fixed state and
// compares the empirical topic distribution against the dense
// posterior with a chi-squared test (K-1 = 1 dof, alpha = 0.01).
func TestSamplingDistribution(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 2e5-draw distribution test in short mode")
	}
	const draws = 200000
	const chiSquaredCrit = 6.635 // 1 dof at alpha = 0.01

	e, s := newSamplingFixture(NewRandUniform(42))
	dense := densePosterior(e, s)
	norm := 0.0
	for _, p := range dense {
		norm += p
	}

	counts := make([]int, e.model.NumTopics())
	for i := 0; i < draws; i++ {
		topic := e.sampleNewTopic(s)
		if topic < 0 {
			t.Fatal("Sampler returned the failure sentinel on a consistent state")
		}
		counts[topic]++
	}

	chi2 := 0.0
	for k, c := range counts {
		expected := dense[k] / norm * draws
		chi2 += (float64(c) - expected) * (float64(c) - expected) / expected
	}
	if chi2 > chiSquaredCrit {
		t.Errorf("Chi-squared %v exceeds %v; counts %v, posterior %v",
			chi2, chiSquaredCrit, counts, dense)
	}
}
