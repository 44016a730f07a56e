package utils

import (
	"bytes"
	"expvar"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/golang/glog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Progress accumulates per-document evaluation results for the
// expvar status page.  The evaluator is single-threaded, so Progress
// is written from one goroutine and only read by the HTTP handlers.
type Progress struct {
	LogLikelihoods []float64
	Tokens         int
}

func (p *Progress) String() string { // Implements expvar.Var
	var buf bytes.Buffer
	for i, ll := range p.LogLikelihoods {
		fmt.Fprintf(&buf, "%05d: %f\n", i, ll)
	}
	return buf.String()
}

// Observe records the log-likelihood of one evaluated document.
func (p *Progress) Observe(logLikelihood float64, tokens int) {
	p.LogLikelihoods = append(p.LogLikelihoods, logLikelihood)
	p.Tokens += tokens
}

// Total returns the running corpus log-likelihood.
func (p *Progress) Total() float64 {
	total := 0.0
	for _, ll := range p.LogLikelihoods {
		total += ll
	}
	return total
}

// EnableExpvar publishes evaluation progress on an HTTP status page
// with pprof, expvar, and a per-document log-likelihood figure.
func EnableExpvar(addr string) *Progress {
	p := new(Progress)
	expvar.Publish("Documents", p)
	http.Handle("/progress/loglikelihood", newLogLikelihoodFigureHandler(p))

	go func() {
		if e := http.ListenAndServe(addr, nil); e != nil {
			glog.Fatalf("ListenAndServe on %s failed: %v", addr, e)
		}
	}()

	return p
}

func newLogLikelihoodFigureHandler(p *Progress) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps := make(plotter.XYs, 0, len(p.LogLikelihoods))
		for i, ll := range p.LogLikelihoods {
			ps = append(ps, plotter.XY{X: float64(i), Y: ll})
		}
		if e := plotFigure(w, ps, "Document", "Log-likelihood"); e != nil {
			http.Error(w, e.Error(), http.StatusInternalServerError)
		}
	}
}

func plotFigure(w io.Writer, ps plotter.XYs, xLabel, yLabel string) error {
	p := plot.New()
	p.Title.Text = strings.Join(os.Args, " ")
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	p.Add(plotter.NewGrid())
	if e := plotutil.AddLinePoints(p, "", ps); e != nil {
		return fmt.Errorf("plotutil.AddLinePoints failed: %v", e)
	}

	c := vgimg.PngCanvas{Canvas: vgimg.New(vg.Length(640), vg.Length(480))}
	p.Draw(draw.New(c))
	_, e := c.WriteTo(w)
	return e
}
