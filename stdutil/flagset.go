package stdutil

import (
	"errors"
	"flag"
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"

	cliparser "github.com/cardinalby/go-cli-parser"
)

var ErrUnknownFlag = errors.New("flag is not defined in FlagSet")

type boolFlag interface {
	IsBoolFlag() bool
}

// IsBoolFlag reports whether the std flag doesn't need a value
func IsBoolFlag(f *flag.Flag) bool {
	if boolFlag, ok := f.Value.(boolFlag); ok {
		return boolFlag.IsBoolFlag()
	}
	return false
}

// ArgsFromFlagSet converts formal flags of flagSet to definitions in lexicographical order.
// Bool flags become flags, others become inputs. One-letter flag names get the same short alias,
// so both `-v` and `--v` are accepted.
func ArgsFromFlagSet(flagSet *flag.FlagSet) []cliparser.Arg {
	var res []cliparser.Arg
	flagSet.VisitAll(func(f *flag.Flag) {
		var arg cliparser.Arg
		if IsBoolFlag(f) {
			arg = cliparser.Flag(f.Name)
		} else {
			arg = cliparser.Input(f.Name)
		}
		if utf8.RuneCountInString(f.Name) == 1 {
			ch, _ := utf8.DecodeRuneInString(f.Name)
			arg = arg.Short(ch)
		}
		res = append(res, arg)
	})
	return res
}

// ApplyToFlagSet sets the matched arguments to the flags with the same names.
// Arguments without a value are set to "true".
func ApplyToFlagSet(flagSet *flag.FlagSet, res cliparser.Result) error {
	for _, name := range slices.Sorted(maps.Keys(res)) {
		if flagSet.Lookup(name) == nil {
			return fmt.Errorf(`%w: "%s"`, ErrUnknownFlag, name)
		}
		value, ok := res[name].Get()
		if !ok {
			value = "true"
		}
		if err := flagSet.Set(name, value); err != nil {
			return fmt.Errorf(`flag "%s": %w`, name, err)
		}
	}
	return nil
}
