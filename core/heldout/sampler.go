package heldout

import (
	"math/rand"
)

// Uniform produces independent uniform variates in [0, 1).  Seeding
// is the caller's responsibility.
type Uniform func() float64

// NewRandUniform returns a Uniform backed by a seeded math/rand
// generator.
func NewRandUniform(seed int64) Uniform {
	rng := rand.New(rand.NewSource(seed))
	return rng.Float64
}

// sampleNewTopic draws a topic for the current type by inverse-CDF
// over the three buckets: topic-term first, then topic-beta over the
// dense index, then smoothing over all topics.  It returns -1 when
// floating-point slop drives a walk past its last slot; the caller
// substitutes a deterministic fallback.
func (e *Evaluator) sampleNewTopic(s *localState) int32 {
	sample := e.uniform() *
		(e.smoothingOnlyMass + s.topicBetaMass + s.topicTermMass)

	if sample < s.topicTermMass {
		for i, n := 0, s.row.NonZeros(); i < n; i++ {
			sample -= s.topicTermScores[i]
			if sample <= 0.0 {
				return int32(i)
			}
		}
		return -1
	}
	sample -= s.topicTermMass

	if sample < s.topicBetaMass {
		sample /= e.model.WordPrior
		for i := 0; i < s.nonZeroTopics; i++ {
			t := s.topicIndex[i]
			sample -= float64(s.topicCounts[t]) /
				(float64(e.model.GlobalTopicHist.At(int(t))) + e.model.WordPriorSum)
			if sample <= 0.0 {
				return t
			}
		}
		return -1
	}
	sample -= s.topicBetaMass

	sample /= e.model.WordPrior
	for t := 0; t < e.model.NumTopics(); t++ {
		sample -= e.model.TopicPrior[t] /
			(float64(e.model.GlobalTopicHist.At(t)) + e.model.WordPriorSum)
		if sample <= 0.0 {
			return int32(t)
		}
	}
	return -1
}
