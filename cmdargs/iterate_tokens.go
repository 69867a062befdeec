package cmdargs

import (
	"iter"
	"slices"
)

// Args is an immutable list of command line tokens
type Args struct {
	Args []string
}

func NewArgs(args []string) Args {
	return Args{
		Args: args,
	}
}

// IterateTokens calls yield for each classified token until it returns false
func (args Args) IterateTokens(yield func(token Token) (getNext bool)) {
	IterateSeq(slices.Values(args.Args), yield)
}

// IterateSeq classifies tokens of a sequence that can be consumed only once.
// The sequence is read one token ahead so that the last token carries RoleLast.
func IterateSeq(seq iter.Seq[string], yield func(token Token) (getNext bool)) {
	next, stop := iter.Pull(seq)
	defer stop()

	arg, ok := next()
	for ok {
		token := Classify(arg)
		var nextArg string
		nextArg, ok = next()
		if !ok {
			token.Role |= RoleLast
		}
		if !yield(token) {
			return
		}
		arg = nextArg
	}
}
