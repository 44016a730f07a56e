// tokenize turns raw text, one document per line, into the
// token-per-field corpus format the evaluator loads.  The default
// segmentation is UAX#29 with NFKC case folding; pass -segdict to
// segment with a sego dictionary instead.
// Usage:
/*
  $GOPATH/bin/tokenize -input=./raw.txt -output=./corpus
*/

package main

import (
	"bufio"
	"flag"
	"strings"

	"github.com/golang/glog"
	"github.com/huichen/sego"
	file "github.com/wangkuiyi/file"

	"github.com/latentlab/egret/core/corpus"
)

func main() {
	flagInput := flag.String("input", "", "Raw text, one document per line")
	flagOutput := flag.String("output", "", "Tokenized corpus output")
	flagSegDict := flag.String("segdict", "",
		"sego dictionary; empty selects UAX#29 segmentation")
	flag.Parse()
	defer glog.Flush()

	segment := newSegmenter(*flagSegDict)

	in, e := file.Open(*flagInput)
	if e != nil {
		glog.Fatalf("Cannot open %s: %v", *flagInput, e)
	}
	defer in.Close()

	out, e := file.Create(*flagOutput)
	if e != nil {
		glog.Fatalf("Cannot create %s: %v", *flagOutput, e)
	}
	w := bufio.NewWriter(out)
	defer func() {
		w.Flush()
		out.Close()
	}()

	lines := 0
	s := bufio.NewScanner(in)
	s.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for s.Scan() {
		tokens := segment(s.Text())
		if len(tokens) == 0 {
			continue
		}
		w.WriteString(strings.Join(tokens, " "))
		w.WriteByte('\n')
		lines++
	}
	if e := s.Err(); e != nil {
		glog.Fatalf("Error reading %s: %v", *flagInput, e)
	}
	glog.Infof("Tokenized %d documents into %s.", lines, *flagOutput)
}

func newSegmenter(dict string) func(string) []string {
	if len(dict) == 0 {
		return func(line string) []string {
			return corpus.Tokenize(corpus.Normalize(line))
		}
	}

	glog.Infof("Loading segmenter dictionary %s ...", dict)
	sgt := new(sego.Segmenter)
	sgt.LoadDictionary(dict)
	glog.Info("Done loading segmenter.")
	return func(line string) []string {
		segs := sgt.Segment([]byte(line))
		tokens := make([]string, 0, len(segs))
		for _, seg := range segs {
			tokens = append(tokens, seg.Token().Text())
		}
		return tokens
	}
}
