package cliparser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParser_StripUnknown(t *testing.T) {
	t.Parallel()
	type expected struct {
		res      []string
		stripped []string
	}
	testCases := []struct {
		name                       string
		args                       []string
		ifTreatUnknownAsFlags      expected
		ifWaitForValueAfterUnknown expected
	}{
		{
			name: "no args",
			args: []string{},
		},
		{
			name: "no unknown options",
			args: []string{"-s", "some", "-f", "file"},
			ifTreatUnknownAsFlags: expected{
				res: []string{"-s", "some", "-f", "file"},
			},
			ifWaitForValueAfterUnknown: expected{
				res: []string{"-s", "some", "-f", "file"},
			},
		},
		{
			name: "unknown option",
			args: []string{"-s", "some", "-f", "--unknown"},
			ifTreatUnknownAsFlags: expected{
				res:      []string{"-s", "some", "-f"},
				stripped: []string{"--unknown"},
			},
			ifWaitForValueAfterUnknown: expected{
				res:      []string{"-s", "some", "-f"},
				stripped: []string{"--unknown"},
			},
		},
		{
			name: "unknown option with value",
			args: []string{"--default", "x", "-u", "value", "-f"},
			ifTreatUnknownAsFlags: expected{
				res:      []string{"--default", "x", "value", "-f"},
				stripped: []string{"-u"},
			},
			ifWaitForValueAfterUnknown: expected{
				res:      []string{"--default", "x", "-f"},
				stripped: []string{"-u", "value"},
			},
		},
		{
			name: "malformed option",
			args: []string{"-abc", "file", "--flag"},
			ifTreatUnknownAsFlags: expected{
				res:      []string{"file", "--flag"},
				stripped: []string{"-abc"},
			},
			ifWaitForValueAfterUnknown: expected{
				res:      []string{"--flag"},
				stripped: []string{"-abc", "file"},
			},
		},
		{
			name: "known option value is kept even if unknown option follows",
			args: []string{"--short", "--unknown", "v"},
			ifTreatUnknownAsFlags: expected{
				res:      []string{"--short", "v"},
				stripped: []string{"--unknown"},
			},
			ifWaitForValueAfterUnknown: expected{
				res:      []string{"--short"},
				stripped: []string{"--unknown", "v"},
			},
		},
	}

	p := newTestParser(t, getTestArgs()...)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, stripped := p.StripUnknown(tc.args, true)
			require.Equal(t, tc.ifTreatUnknownAsFlags.res, res)
			require.Equal(t, tc.ifTreatUnknownAsFlags.stripped, stripped)

			res, stripped = p.StripUnknown(tc.args, false)
			require.Equal(t, tc.ifWaitForValueAfterUnknown.res, res)
			require.Equal(t, tc.ifWaitForValueAfterUnknown.stripped, stripped)
		})
	}
}

func TestParser_StripUnknownThenParse(t *testing.T) {
	t.Parallel()
	p := newTestParser(t, getTestArgs()...)

	res, stripped := p.StripUnknown(
		[]string{"a", "--verbose", "--default", "d", "--level", "3", "b"},
		false,
	)
	require.Equal(t, []string{"--verbose", "--level", "3"}, stripped)

	parsed, err := p.Parse(res)
	require.NoError(t, err)
	require.Equal(t, Result{
		"file":    NewValue("a"),
		"default": NewValue("d"),
		"path":    NewValue("b"),
	}, parsed)
}
