// evaluate computes the left-to-right held-out log-likelihood of a
// corpus under a trained LDA model.
// Usage:
/*
  $GOPATH/bin/evaluate \
    -model=./testdata/model -vocab=./testdata/vocab \
    -corpus=./testdata/corpus -particles=20 -resampling
*/

package main

import (
	"flag"
	"math"

	"github.com/golang/glog"

	"github.com/latentlab/egret/core/heldout"
	"github.com/latentlab/egret/core/utils"
)

func main() {
	flagAddr := flag.String("addr", ":6060", "HTTP status page address")
	flagModel := flag.String("model", "", "Model file")
	flagVocab := flag.String("vocab", "", "Vocabulary file")
	flagCorpus := flag.String("corpus", "", "Held-out corpus file")
	flagParticles := flag.Int("particles", 20, "Particles per document")
	flagResampling := flag.Bool("resampling", false,
		"Resample prefix assignments at every position")
	flagSeed := flag.Int64("seed", 1, "Seed of the uniform source")
	flag.Parse()
	defer glog.Flush()

	progress := utils.EnableExpvar(*flagAddr)

	model := utils.LoadModelOrDie(*flagModel)
	vocab := utils.LoadVocabOrDie(*flagVocab)
	if vocab.Len() != model.VocabSize() {
		glog.Fatalf("Vocabulary has %d types, model has %d",
			vocab.Len(), model.VocabSize())
	}
	corpus := utils.LoadCorpusOrDie(*flagCorpus, vocab)

	ev := heldout.NewEvaluator(model, heldout.NewRandUniform(*flagSeed))
	for i, doc := range corpus {
		logl := ev.DocLogLikelihood(doc, *flagParticles, *flagResampling)

		tokens := 0
		for _, w := range doc {
			if w >= 0 && int(w) < model.VocabSize() {
				tokens++
			}
		}
		progress.Observe(logl, tokens)
		if (i+1)%1000 == 0 {
			glog.Infof("Evaluated %d documents, log-likelihood %f",
				i+1, progress.Total())
		}
	}

	total := progress.Total()
	glog.Infof("Total log-likelihood %f over %d tokens", total, progress.Tokens)
	if progress.Tokens > 0 {
		glog.Infof("Per-token perplexity %f",
			math.Exp(-total/float64(progress.Tokens)))
	}
}
