package heldout

import (
	"fmt"
	"math"
)

// Evaluator estimates held-out log-likelihood left-to-right: for each
// position of a document it records the marginal probability of the
// token given the tokens to its left, then samples an assignment for
// it.  Independent particles repeat the pass and are averaged in
// probability space.
//
// The evaluator owns mutable caches (cachedCoefficients and the
// uniform source), so evaluation is single-threaded: one corpus, one
// document, one particle at a time.  Between documents the caches
// hold their empty-document values.
type Evaluator struct {
	model              *Model
	uniform            Uniform
	topicPriorSum      float64
	cachedCoefficients []float64 // (alpha_t + n_dt) / (n_t + betaSum)
	smoothingOnlyMass  float64   // sum_t alpha_t * beta / (n_t + betaSum)
}

// NewEvaluator builds the evaluator caches from the model view.  A
// nil uniform defaults to a math/rand source with seed 1.
func NewEvaluator(m *Model, u Uniform) *Evaluator {
	if u == nil {
		u = NewRandUniform(1)
	}
	e := &Evaluator{
		model:              m,
		uniform:            u,
		topicPriorSum:      m.TopicPriorSum,
		cachedCoefficients: make([]float64, m.NumTopics()),
	}
	for t := 0; t < m.NumTopics(); t++ {
		denom := float64(m.GlobalTopicHist.At(t)) + m.WordPriorSum
		e.smoothingOnlyMass += m.TopicPrior[t] * m.WordPrior / denom
		e.cachedCoefficients[t] = m.TopicPrior[t] / denom
	}
	return e
}

// EvaluateCorpus returns the total log-likelihood of a corpus.  Each
// document is a sequence of type ids; ids outside [0, V) are
// out-of-vocabulary and contribute nothing.
func (e *Evaluator) EvaluateCorpus(corpus [][]int32, particles int,
	resampling bool) float64 {

	total := 0.0
	for _, doc := range corpus {
		total += e.DocLogLikelihood(doc, particles, resampling)
	}
	return total
}

// DocLogLikelihood runs the given number of particles over one
// document and combines their per-position marginals.
func (e *Evaluator) DocLogLikelihood(doc []int32, particles int,
	resampling bool) float64 {

	if particles < 1 {
		panic(fmt.Sprintf("particles = %d, less than 1", particles))
	}
	probs := make([][]float64, particles)
	for p := 0; p < particles; p++ {
		probs[p] = e.wordProbabilities(doc, resampling)
	}
	return combineParticles(probs)
}

// combineParticles averages particles in probability space per
// position and sums the logs.  Positions where every particle
// recorded zero (out-of-vocabulary, or no mass) are skipped.  The
// loop runs to the longest particle and stops at shorter ones, so
// ragged particles combine too.
func combineParticles(probs [][]float64) float64 {
	maxLen := 0
	for _, w := range probs {
		if len(w) > maxLen {
			maxLen = len(w)
		}
	}

	logl := 0.0
	logParticles := math.Log(float64(len(probs)))
	for position := 0; position < maxLen; position++ {
		sum := 0.0
		for _, w := range probs {
			if position >= len(w) {
				break
			}
			sum += w[position]
		}
		if sum > 0 {
			logl += math.Log(sum) - logParticles
		}
	}
	return logl
}

// wordProbabilities runs one particle left-to-right over a document
// and returns the marginal probability recorded at each position; OOV
// positions stay zero.
func (e *Evaluator) wordProbabilities(types []int32, resampling bool) []float64 {
	docLength := len(types)
	probs := make([]float64, docLength)
	state := newLocalState(e.model.NumTopics(), docLength)

	// In-vocabulary tokens processed so far.
	tokensSoFar := 0

	for limit := 0; limit < docLength; limit++ {
		if resampling {
			// Resample every assignment left of the limit.
			for position := 0; position < limit; position++ {
				w := types[position]
				if w < 0 || int(w) >= e.model.VocabSize() {
					continue
				}
				state.setType(e.model.TypeTopicRows[w])

				oldTopic := state.docTopics[position]
				e.removeTopic(state, oldTopic)
				e.updateTopicScores(state)

				newTopic := e.sampleNewTopic(state)
				if newTopic < 0 {
					newTopic = oldTopic
				}
				e.addTopic(state, newTopic, position)
			}
		}

		w := types[limit]
		if w < 0 || int(w) >= e.model.VocabSize() {
			continue
		}
		state.setType(e.model.TypeTopicRows[w])
		e.updateTopicScores(state)

		probs[limit] += (e.smoothingOnlyMass +
			state.topicBetaMass + state.topicTermMass) /
			(e.topicPriorSum + float64(tokensSoFar))

		newTopic := e.sampleNewTopic(state)
		if newTopic < 0 {
			newTopic = int32(e.model.NumTopics() - 1)
		}
		e.addTopic(state, newTopic, limit)

		tokensSoFar++
	}

	// Restore the coefficients this particle touched to their
	// empty-document values.
	for i := 0; i < state.nonZeroTopics; i++ {
		t := state.topicIndex[i]
		e.cachedCoefficients[t] = e.model.TopicPrior[t] /
			(float64(e.model.GlobalTopicHist.At(int(t))) + e.model.WordPriorSum)
	}
	return probs
}
