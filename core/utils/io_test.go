package utils

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latentlab/egret/core/heldout"
	"github.com/latentlab/egret/core/hist"
)

func TestSaveAndLoadModel(t *testing.T) {
	m, e := heldout.NewModel([]float64{0.5, 0.5}, 0.01,
		hist.Dense{10, 10},
		[]hist.Ranked{{5, 5}, {1, 0}, {0, 0}})
	assert.NoError(t, e)

	fn := path.Join(t.TempDir(), "model")
	SaveModel(m, fn)
	defer os.Remove(fn)

	n := LoadModelOrDie(fn)
	assert.Equal(t, m.NumTopics(), n.NumTopics())
	assert.Equal(t, m.VocabSize(), n.VocabSize())
	assert.Equal(t, m.TopicPrior, n.TopicPrior)
	assert.Equal(t, m.GlobalTopicHist, n.GlobalTopicHist)
	assert.Equal(t, m.TypeTopicRows, n.TypeTopicRows)
}

func TestProgress(t *testing.T) {
	p := new(Progress)
	p.Observe(-1.5, 3)
	p.Observe(-0.5, 1)
	assert.Equal(t, 4, p.Tokens)
	assert.InDelta(t, -2.0, p.Total(), 1e-12)
	assert.Contains(t, p.String(), "00001")
}
