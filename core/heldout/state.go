package heldout

import (
	"github.com/latentlab/egret/core/hist"
)

// localState is the mutable per-particle state of one document.  A
// particle owns its localState exclusively; only the cached
// coefficients it touches leak into the Evaluator, and those are
// restored when the document ends.
type localState struct {
	docTopics     []int32 // assignment per position, meaningful once sampled
	topicCounts   []int32 // n_dk
	topicIndex    []int32 // ascending topics with topicCounts > 0
	nonZeroTopics int

	row             hist.Ranked // type-topic row of the current type
	topicTermScores []float64   // scores of the non-zero prefix of row
	topicBetaMass   float64     // sum_k beta * n_dk / (n_k + betaSum)
	topicTermMass   float64     // sum over row prefix of coefficient * count
}

func newLocalState(numTopics, docLen int) *localState {
	return &localState{
		docTopics:       make([]int32, docLen),
		topicCounts:     make([]int32, numTopics),
		topicIndex:      make([]int32, numTopics),
		topicTermScores: make([]float64, numTopics),
	}
}

func (s *localState) setType(row hist.Ranked) {
	s.row = row
}

// addTopic records the assignment of topic at position and folds the
// new count into the running state.
func (e *Evaluator) addTopic(s *localState, topic int32, position int) {
	s.docTopics[position] = topic
	e.adjustTopic(s, topic, 1)
}

func (e *Evaluator) removeTopic(s *localState, topic int32) {
	e.adjustTopic(s, topic, -1)
}

// adjustTopic moves one token in or out of topic, keeping the
// topic-beta mass, the cached coefficient, and the dense index
// consistent with the new count.  The smoothing-only mass is clamped
// at its empty-document value and deliberately left untouched.
func (e *Evaluator) adjustTopic(s *localState, topic, delta int32) {
	t := int(topic)
	denom := float64(e.model.GlobalTopicHist.At(t)) + e.model.WordPriorSum

	s.topicBetaMass -= e.model.WordPrior * float64(s.topicCounts[t]) / denom
	s.topicCounts[t] += delta
	s.topicBetaMass += e.model.WordPrior * float64(s.topicCounts[t]) / denom

	e.cachedCoefficients[t] =
		(e.model.TopicPrior[t] + float64(s.topicCounts[t])) / denom

	if delta > 0 {
		s.indexAdd(topic)
	} else {
		s.indexRemove(topic)
	}
}

// indexAdd inserts topic into the ascending dense index when its
// count just became non-zero, shifting larger topics right.
func (s *localState) indexAdd(topic int32) {
	if s.topicCounts[topic] != 1 {
		return
	}
	i := s.nonZeroTopics
	for i > 0 && s.topicIndex[i-1] > topic {
		s.topicIndex[i] = s.topicIndex[i-1]
		i--
	}
	s.topicIndex[i] = topic
	s.nonZeroTopics++
}

// indexRemove drops topic from the dense index when its count just
// reached zero, shifting the tail left.
func (s *localState) indexRemove(topic int32) {
	if s.topicCounts[topic] != 0 {
		return
	}
	i := 0
	for s.topicIndex[i] != topic {
		i++
	}
	for ; i+1 < s.nonZeroTopics; i++ {
		s.topicIndex[i] = s.topicIndex[i+1]
	}
	s.nonZeroTopics--
}

// updateTopicScores recomputes the topic-term mass and per-slot
// scores for the current type from the cached coefficients and the
// non-zero prefix of its row.
func (e *Evaluator) updateTopicScores(s *localState) {
	s.topicTermMass = 0.0
	s.row.ForEach(func(topic int, count int64) error {
		score := e.cachedCoefficients[topic] * float64(count)
		s.topicTermScores[topic] = score
		s.topicTermMass += score
		return nil
	})
}
