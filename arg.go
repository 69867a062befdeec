package cliparser

import (
	"fmt"
	"strings"
)

// Kind is a role of an argument definition
type Kind int

const (
	KindNone Kind = iota
	// KindParam is a required positional parameter filled by a bare token
	KindParam
	// KindInput is an option that must be followed by exactly one value token
	KindInput
	// KindFlag is an option without a value
	KindFlag
)

func (k Kind) String() string {
	switch k {
	case KindParam:
		return "param"
	case KindInput:
		return "input"
	case KindFlag:
		return "flag"
	default:
		return "none"
	}
}

// ParseKind converts "param", "input" or "flag" to Kind
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "param":
		return KindParam, nil
	case "input":
		return KindInput, nil
	case "flag":
		return KindFlag, nil
	}
	return KindNone, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Arg describes one recognized argument. It's a value type: every builder method
// returns a modified copy and leaves the receiver untouched.
type Arg struct {
	name         string
	kind         Kind
	expectsValue bool
	short        rune
	hasShort     bool
}

// NewArg returns an empty definition. Call Param, Input or Flag on it to make it useful.
func NewArg() Arg {
	return Arg{}
}

// Param is a shortcut for NewArg().Param(name)
func Param(name string) Arg {
	return NewArg().Param(name)
}

// Input is a shortcut for NewArg().Input(name)
func Input(name string) Arg {
	return NewArg().Input(name)
}

// Flag is a shortcut for NewArg().Flag(name)
func Flag(name string) Arg {
	return NewArg().Flag(name)
}

// Param makes the argument a required positional parameter.
// Registration order of parameters defines which bare token fills which of them.
func (a Arg) Param(name string) Arg {
	a.name = name
	a.kind = KindParam
	a.expectsValue = false
	return a
}

// Input makes the argument an option expecting a value: `--name value`
func (a Arg) Input(name string) Arg {
	a.name = name
	a.kind = KindInput
	a.expectsValue = true
	return a
}

// Flag makes the argument an option without a value: `--name`
func (a Arg) Flag(name string) Arg {
	a.name = name
	a.kind = KindFlag
	a.expectsValue = false
	return a
}

// Short sets a single character alias: `-c`. The kind of the argument is kept.
func (a Arg) Short(ch rune) Arg {
	a.short = ch
	a.hasShort = true
	return a
}

func (a Arg) Name() string {
	return a.name
}

func (a Arg) Kind() Kind {
	return a.kind
}

// ExpectsValue is true if a value token must follow the option
func (a Arg) ExpectsValue() bool {
	return a.expectsValue
}

// GetShort returns the short alias if it's set
func (a Arg) GetShort() (ch rune, ok bool) {
	return a.short, a.hasShort
}

// String returns the way the argument can be invoked, e.g. "--flag/-f" or "<file>"
func (a Arg) String() string {
	if a.kind == KindParam {
		return "<" + a.name + ">"
	}
	res := "--" + a.name
	if a.hasShort {
		res += "/-" + string(a.short)
	}
	return res
}
