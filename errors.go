package cliparser

import (
	"errors"
	"fmt"
)

var ErrArgRedefined = errors.New("argument redefined")
var ErrInvalidKind = errors.New("invalid argument kind")

// Sentinels matched by *ParseError with errors.Is
var (
	ErrUnexpected = errors.New("unexpected token")
	ErrDuplicate  = errors.New("duplicate token")
	ErrMissing    = errors.New("missing argument")
)

// Reason is a closed set of parse failure kinds
type Reason int

const (
	// ReasonUnexpected means a token matched no definition or an option came
	// while the previous one was still waiting for its value
	ReasonUnexpected Reason = iota + 1
	// ReasonDuplicate means an argument was about to be stored twice
	ReasonDuplicate
	// ReasonMissing means the input ended before an option got its value
	// or a positional parameter was never supplied
	ReasonMissing
)

func (r Reason) String() string {
	switch r {
	case ReasonUnexpected:
		return "unexpected"
	case ReasonDuplicate:
		return "duplicate"
	case ReasonMissing:
		return "missing"
	default:
		return "unknown"
	}
}

func (r Reason) sentinel() error {
	switch r {
	case ReasonUnexpected:
		return ErrUnexpected
	case ReasonDuplicate:
		return ErrDuplicate
	case ReasonMissing:
		return ErrMissing
	default:
		return nil
	}
}

// ParseError is returned by Parser.Parse
type ParseError struct {
	Reason Reason
	// Token is the offending token. Empty for ReasonMissing
	Token string
	// ArgName is the name of the definition involved, if known
	ArgName string
}

func (e *ParseError) Error() string {
	switch e.Reason {
	case ReasonUnexpected:
		return fmt.Sprintf("invalid command, unexpected token '%s'", e.Token)
	case ReasonDuplicate:
		return fmt.Sprintf("invalid command, duplicate token '%s'", e.Token)
	case ReasonMissing:
		if e.ArgName == "" {
			return "invalid command, missing argument"
		}
		return fmt.Sprintf("invalid command, missing argument '%s'", e.ArgName)
	default:
		return "invalid command"
	}
}

func (e *ParseError) Is(target error) bool {
	return target != nil && target == e.Reason.sentinel()
}

// ReasonOf returns the Reason of a *ParseError found in err's chain
func ReasonOf(err error) (reason Reason, ok bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Reason, true
	}
	return 0, false
}

func newUnexpectedErr(token string) *ParseError {
	return &ParseError{Reason: ReasonUnexpected, Token: token}
}

func newDuplicateErr(token, argName string) *ParseError {
	return &ParseError{Reason: ReasonDuplicate, Token: token, ArgName: argName}
}

func newMissingErr(argName string) *ParseError {
	return &ParseError{Reason: ReasonMissing, ArgName: argName}
}
