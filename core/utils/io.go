// Package utils holds the IO and progress plumbing around the
// evaluator core: loading models, vocabularies and corpora, and the
// expvar status page.
package utils

import (
	"encoding/gob"
	"os"
	"path"

	"github.com/golang/glog"
	cmprs "github.com/wangkuiyi/compress_io"

	"github.com/latentlab/egret/core/corpus"
	"github.com/latentlab/egret/core/heldout"
)

func LoadVocabOrDie(filename string) *corpus.Vocabulary {
	glog.Infof("Loading vocab %s ...", filename)

	f, e := os.Open(filename)
	r := cmprs.NewReader(f, e, path.Ext(filename))
	if r == nil {
		glog.Fatalf("Cannot open vocab file %s: %v", filename, e)
	}
	defer r.Close()

	vocab := corpus.NewVocabulary()
	if e := vocab.Load(r); e != nil {
		glog.Fatalf("Failed loading vocab file %s: %v", filename, e)
	}

	glog.Infof("Done loading vocabulary, %d types.", vocab.Len())
	return vocab
}

func LoadCorpusOrDie(filename string, vocab *corpus.Vocabulary) [][]int32 {
	glog.Infof("Loading corpus %s ...", filename)

	f, e := os.Open(filename)
	r := cmprs.NewReader(f, e, path.Ext(filename))
	if r == nil {
		glog.Fatalf("Cannot open corpus file %s: %v", filename, e)
	}
	defer r.Close()

	docs, e := corpus.Load(r, vocab)
	if e != nil {
		glog.Fatalf("Error reading %s: %v", filename, e)
	}
	if len(docs) == 0 {
		glog.Fatalf("Corpus %s contains no document", filename)
	}

	var tokens, oov int
	for _, d := range docs {
		tokens += len(d)
		for _, w := range d {
			if w < 0 || int(w) >= vocab.Len() {
				oov++
			}
		}
	}
	glog.Infof("Done loading corpus: %d documents, %d tokens, %d OOV.",
		len(docs), tokens, oov)
	return docs
}

func LoadModelOrDie(filename string) *heldout.Model {
	glog.Infof("Loading model %s ...", filename)
	m := new(heldout.Model)

	f, e := os.Open(filename)
	r := cmprs.NewReader(f, e, path.Ext(filename))
	if r == nil {
		glog.Fatalf("Cannot open model file %s: %v", filename, e)
	}
	defer r.Close()

	if e := gob.NewDecoder(r).Decode(m); e != nil {
		glog.Fatalf("Cannot decode model: %v", e)
	}
	// Decoding bypasses heldout.NewModel, so re-check the invariants.
	if e := m.Validate(); e != nil {
		glog.Fatalf("Model %s is inconsistent: %v", filename, e)
	}

	glog.Infof("Done. %d topics %d types.", m.NumTopics(), m.VocabSize())
	return m
}

func SaveModel(m *heldout.Model, filename string) {
	if len(filename) == 0 {
		return
	}
	f, e := os.Create(filename)
	w := cmprs.NewWriter(f, e, path.Ext(filename))
	if w == nil {
		glog.Errorf("Cannot create file %s: %v", filename, e)
		return
	}
	defer func() {
		w.Close()
		glog.Infof("Saved model to %s.", filename)
	}()
	if e := gob.NewEncoder(w).Encode(m); e != nil {
		glog.Errorf("Failed encoding model: %v", e)
	}
}
