package cliparser

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"sync"

	"github.com/cardinalby/go-cli-parser/cmdargs"
)

// Observer is notified about every finished Parse call
type Observer interface {
	ObserveParse(tokensCount int, err error)
}

type Option func(p *Parser)

// WithLogger sets the logger used for debug messages. Logging is disabled by default.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithObserver adds an observer of parse outcomes
func WithObserver(observer Observer) Option {
	return func(p *Parser) {
		if observer != nil {
			p.observers = append(p.observers, observer)
		}
	}
}

// Parser matches command line tokens against registered argument definitions.
// Parser keeps no per-parse state, so it can be used for many independent
// Parse calls, including concurrent ones.
type Parser struct {
	mu        sync.RWMutex
	args      []Arg
	logger    *slog.Logger
	observers []Observer
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add registers one argument definition. See AddAll
func (p *Parser) Add(arg Arg) error {
	return p.AddAll(arg)
}

// AddAll registers definitions preserving their order.
// It fails with ErrArgRedefined if a name or a short alias is already taken;
// in this case none of the definitions is added.
func (p *Parser) AddAll(args ...Arg) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for i, arg := range args {
		existing := slices.Concat(p.args, args[:i])
		if err := checkRedefinition(existing, arg); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	p.args = append(p.args, args...)
	for _, arg := range args {
		p.logger.Debug("argument registered", "arg", arg.String(), "kind", arg.kind)
	}
	return nil
}

// Len returns the number of registered definitions
func (p *Parser) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.args)
}

// Args returns a copy of the registered definitions
func (p *Parser) Args() []Arg {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.args)
}

// Parse matches tokens (without the program name) against the registered definitions.
// Returned error is always *ParseError.
func (p *Parser) Parse(tokens []string) (Result, error) {
	return p.ParseSeq(slices.Values(tokens))
}

// ParseSeq is like Parse but consumes a sequence that can be iterated only once
func (p *Parser) ParseSeq(tokens iter.Seq[string]) (Result, error) {
	state := newParseState(p.Args())
	var err error
	cmdargs.IterateSeq(tokens, func(token cmdargs.Token) bool {
		err = state.consume(token)
		return err == nil
	})
	if err == nil {
		err = state.finish()
	}

	for _, observer := range p.observers {
		observer.ObserveParse(state.tokensCount, err)
	}
	if err != nil {
		p.logger.Debug("parse failed", "error", err, "tokens", state.tokensCount)
		return nil, err
	}
	p.logger.Debug("parsed", "tokens", state.tokensCount, "matched", len(state.output))
	return state.output, nil
}

func checkRedefinition(existing []Arg, arg Arg) error {
	for _, other := range existing {
		if arg.name != "" && other.name == arg.name {
			return fmt.Errorf("%w: name '%s'", ErrArgRedefined, arg.name)
		}
		if arg.hasShort && other.hasShort && other.short == arg.short {
			return fmt.Errorf(
				"%w: short '-%c' of '%s' is used by '%s'",
				ErrArgRedefined, arg.short, arg.name, other.name,
			)
		}
	}
	return nil
}

// parseState is a working state of a single Parse call
type parseState struct {
	args     []Arg
	consumed []bool
	output   Result
	// pending is an index of the option waiting for its value, -1 if none
	pending     int
	tokensCount int
}

func newParseState(args []Arg) *parseState {
	return &parseState{
		args:     args,
		consumed: make([]bool, len(args)),
		output:   make(Result),
		pending:  -1,
	}
}

func (s *parseState) consume(token cmdargs.Token) error {
	s.tokensCount++
	if err := s.consumeToken(token); err != nil {
		return err
	}
	if token.IsLast() && s.pending >= 0 {
		return newMissingErr(s.args[s.pending].name)
	}
	return nil
}

func (s *parseState) consumeToken(token cmdargs.Token) error {
	if token.IsOption() {
		if s.pending >= 0 {
			return newUnexpectedErr(token.Arg)
		}
		i := s.lookupOption(token)
		if i < 0 {
			return newUnexpectedErr(token.Arg)
		}
		if s.args[i].expectsValue {
			s.pending = i
			return nil
		}
		return s.insert(s.args[i].name, Value{}, token.Arg)
	}

	if s.pending >= 0 {
		name := s.args[s.pending].name
		s.pending = -1
		return s.insert(name, NewValue(token.Arg), token.Arg)
	}

	i := s.nextParam()
	if i < 0 {
		return newUnexpectedErr(token.Arg)
	}
	s.consumed[i] = true
	return s.insert(s.args[i].name, NewValue(token.Arg), token.Arg)
}

// lookupOption returns the index of the first definition matching an option token, -1 if none
func (s *parseState) lookupOption(token cmdargs.Token) int {
	switch {
	case token.Role.Has(cmdargs.RoleLongOption):
		return slices.IndexFunc(s.args, func(arg Arg) bool {
			return arg.name == token.Name
		})
	case token.Role.Has(cmdargs.RoleShortOption):
		return slices.IndexFunc(s.args, func(arg Arg) bool {
			return arg.hasShort && arg.short == token.Short
		})
	default:
		return -1
	}
}

// nextParam returns the index of the first not yet consumed param, -1 if none
func (s *parseState) nextParam() int {
	for i, arg := range s.args {
		if arg.kind == KindParam && !s.consumed[i] {
			return i
		}
	}
	return -1
}

func (s *parseState) insert(name string, value Value, token string) error {
	if !s.output.insert(name, value) {
		return newDuplicateErr(token, name)
	}
	return nil
}

func (s *parseState) finish() error {
	if s.pending >= 0 {
		return newMissingErr(s.args[s.pending].name)
	}
	if i := s.nextParam(); i >= 0 {
		return newMissingErr(s.args[i].name)
	}
	return nil
}
