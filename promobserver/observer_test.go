package promobserver

import (
	"errors"
	"strings"
	"testing"

	cliparser "github.com/cardinalby/go-cli-parser"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserver(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	observer, err := New(reg, "test")
	require.NoError(t, err)

	p := cliparser.NewParser(cliparser.WithObserver(observer))
	require.NoError(t, p.AddAll(cliparser.Flag("flag"), cliparser.Input("in")))

	for _, tokens := range [][]string{
		{"--flag"},
		{"--in", "x"},
		{"--flag", "--flag"},
		{"--in"},
		{"bare"},
	} {
		_, _ = p.Parse(tokens)
	}

	require.Equal(t, 2.0, testutil.ToFloat64(observer.parses.WithLabelValues(OutcomeOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(observer.parses.WithLabelValues("duplicate")))
	require.Equal(t, 1.0, testutil.ToFloat64(observer.parses.WithLabelValues("missing")))
	require.Equal(t, 1.0, testutil.ToFloat64(observer.parses.WithLabelValues("unexpected")))

	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP test_cliparser_parses_total Number of Parse calls by outcome (ok, unexpected, duplicate, missing).
# TYPE test_cliparser_parses_total counter
test_cliparser_parses_total{outcome="duplicate"} 1
test_cliparser_parses_total{outcome="missing"} 1
test_cliparser_parses_total{outcome="ok"} 2
test_cliparser_parses_total{outcome="unexpected"} 1
`), "test_cliparser_parses_total"))
}

func TestNew_RegisterTwice(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	_, err := New(reg, "test")
	require.NoError(t, err)
	_, err = New(reg, "test")
	require.Error(t, err)
}

func TestOutcome(t *testing.T) {
	t.Parallel()
	require.Equal(t, OutcomeOK, Outcome(nil))
	require.Equal(t, OutcomeError, Outcome(errors.New("other")))
}
