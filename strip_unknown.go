package cliparser

import (
	"github.com/cardinalby/go-cli-parser/cmdargs"
)

// StripUnknown splits tokens into the ones matching registered options (with their values)
// and the ones that don't. Ordinary tokens that are not values of stripped options are kept
// as positional parameters.
// If `unknownAsFlags` is false, an ordinary token following an unknown option is treated as
// its value and stripped as well.
// The relative order of tokens is preserved in both results.
func (p *Parser) StripUnknown(tokens []string, unknownAsFlags bool) (res, stripped []string) {
	state := newParseState(p.Args())
	const (
		valueNone = iota
		valueKnown
		valueUnknown
	)
	expValue := valueNone

	cmdargs.NewArgs(tokens).IterateTokens(func(token cmdargs.Token) bool {
		if !token.IsOption() {
			if expValue == valueUnknown {
				stripped = append(stripped, token.Arg)
			} else {
				res = append(res, token.Arg)
			}
			expValue = valueNone
			return true
		}

		i := state.lookupOption(token)
		switch {
		case i >= 0:
			res = append(res, token.Arg)
			expValue = valueNone
			if state.args[i].expectsValue {
				expValue = valueKnown
			}
		case unknownAsFlags:
			stripped = append(stripped, token.Arg)
			expValue = valueNone
		default:
			stripped = append(stripped, token.Arg)
			expValue = valueUnknown
		}
		return true
	})
	return res, stripped
}
