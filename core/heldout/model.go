// Package heldout estimates the log marginal likelihood of held-out
// documents under a trained LDA model with the left-to-right particle
// method.  The per-token conditional posterior is decomposed into the
// three SparseLDA buckets of Yao, Mimno and McCallum (KDD 2009), so a
// topic draw walks only the non-zero counts instead of all K topics.
package heldout

import (
	"fmt"

	"github.com/latentlab/egret/core/hist"
	"github.com/wangkuiyi/parallel"
)

// Model is a read-only view of trained LDA statistics.  It is never
// mutated by evaluation and may be shared across evaluators.
type Model struct {
	TopicPrior      []float64 // asymmetric alpha, one per topic
	TopicPriorSum   float64
	WordPrior       float64 // symmetric beta
	WordPriorSum    float64 // K * beta
	GlobalTopicHist hist.Dense
	TypeTopicRows   []hist.Ranked
}

// NewModel assembles a model view and validates it.  typeTopicRows
// holds one ranked row per vocabulary type; rows must be length K,
// descending before their first zero.
func NewModel(topicPrior []float64, wordPrior float64,
	globalTopicHist hist.Dense, typeTopicRows []hist.Ranked) (*Model, error) {

	m := &Model{
		TopicPrior:      topicPrior,
		WordPrior:       wordPrior,
		WordPriorSum:    wordPrior * float64(len(topicPrior)),
		GlobalTopicHist: globalTopicHist,
		TypeTopicRows:   typeTopicRows,
	}
	for _, a := range topicPrior {
		m.TopicPriorSum += a
	}
	if e := m.Validate(); e != nil {
		return nil, e
	}
	return m, nil
}

// NewModelFromHists builds a model view from trainer-style per-word
// topic histograms, ranking each into a row.
func NewModelFromHists(topicPrior []float64, wordPrior float64,
	globalTopicHist hist.Dense, wordTopicHists []hist.Hist) (*Model, error) {

	k := len(topicPrior)
	rows := make([]hist.Ranked, len(wordTopicHists))
	for w, h := range wordTopicHists {
		rows[w] = hist.NewRanked(k)
		if h != nil {
			rows[w].Assign(h)
		}
	}
	return NewModel(topicPrior, wordPrior, globalTopicHist, rows)
}

func (m *Model) NumTopics() int {
	return len(m.TopicPrior)
}

func (m *Model) VocabSize() int {
	return len(m.TypeTopicRows)
}

// Validate checks the invariants of the model view.  It is called by
// NewModel and again after deserialization, which bypasses NewModel.
func (m *Model) Validate() error {
	k := m.NumTopics()
	if k < 1 {
		return fmt.Errorf("numTopics = %d, less than 1", k)
	}
	if m.WordPrior <= 0.0 {
		return fmt.Errorf("wordPrior = %f, not positive", m.WordPrior)
	}
	for t, a := range m.TopicPrior {
		if a <= 0.0 {
			return fmt.Errorf("topicPrior[%d] = %f, not positive", t, a)
		}
	}
	if m.GlobalTopicHist.Len() != k {
		return fmt.Errorf("global topic hist has %d topics, expected %d",
			m.GlobalTopicHist.Len(), k)
	}
	for t := 0; t < k; t++ {
		if m.GlobalTopicHist.At(t) < 0 {
			return fmt.Errorf("global count of topic %d is %d, negative",
				t, m.GlobalTopicHist.At(t))
		}
	}

	// Row validation is independent per type; fan it out.
	return parallel.For(0, len(m.TypeTopicRows), 1, func(w int) error {
		r := m.TypeTopicRows[w]
		if r.Len() != k {
			return fmt.Errorf("type %d row has %d slots, expected %d",
				w, r.Len(), k)
		}
		if e := r.Validate(); e != nil {
			return fmt.Errorf("type %d: %v", w, e)
		}
		return nil
	})
}
