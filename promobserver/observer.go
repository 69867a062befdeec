// Package promobserver exports parse outcomes of cliparser.Parser as Prometheus metrics.
package promobserver

import (
	"fmt"

	cliparser "github.com/cardinalby/go-cli-parser"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Observer implements cliparser.Observer
type Observer struct {
	parses *prometheus.CounterVec
	tokens prometheus.Histogram
}

// New creates an Observer and registers its collectors with reg
func New(reg prometheus.Registerer, namespace string) (*Observer, error) {
	o := &Observer{
		parses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cliparser",
			Name:      "parses_total",
			Help:      "Number of Parse calls by outcome (ok, unexpected, duplicate, missing).",
		}, []string{"outcome"}),
		tokens: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "cliparser",
			Name:      "tokens_consumed",
			Help:      "Number of tokens consumed by a Parse call.",
			Buckets:   prometheus.LinearBuckets(0, 4, 8),
		}),
	}
	for _, c := range []prometheus.Collector{o.parses, o.tokens} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return o, nil
}

func (o *Observer) ObserveParse(tokensCount int, err error) {
	o.parses.WithLabelValues(Outcome(err)).Inc()
	o.tokens.Observe(float64(tokensCount))
}

// Outcome returns the metric label for a Parse result
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if reason, ok := cliparser.ReasonOf(err); ok {
		return reason.String()
	}
	return OutcomeError
}
