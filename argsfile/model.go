// Package argsfile loads argument definitions from YAML or HCL files.
//
// YAML:
//
//	args:
//	  - name: output
//	    kind: input
//	    short: o
//	  - name: file
//	    kind: param
//
// HCL:
//
//	arg "output" {
//	  kind  = "input"
//	  short = "o"
//	}
//	arg "file" {
//	  kind = "param"
//	}
package argsfile

import (
	"errors"
	"fmt"
	"unicode/utf8"

	cliparser "github.com/cardinalby/go-cli-parser"
)

var ErrInvalidFile = errors.New("invalid definitions file")

// File is the format-agnostic content of a definitions file
type File struct {
	Args []ArgSpec `yaml:"args" json:"args" hcl:"arg,block" jsonschema:"description=Argument definitions in registration order"`
}

// ArgSpec describes one argument definition
type ArgSpec struct {
	Name        string `yaml:"name" json:"name" hcl:"name,label" jsonschema:"required,minLength=1"`
	Kind        string `yaml:"kind" json:"kind" hcl:"kind" jsonschema:"required,enum=param,enum=input,enum=flag"`
	Short       string `yaml:"short,omitempty" json:"short,omitempty" hcl:"short,optional" jsonschema:"minLength=1,maxLength=1,description=Single character alias"`
	Description string `yaml:"description,omitempty" json:"description,omitempty" hcl:"description,optional"`
}

// Arg converts the spec to a definition
func (s ArgSpec) Arg() (cliparser.Arg, error) {
	if s.Name == "" {
		return cliparser.Arg{}, fmt.Errorf("%w: empty name", ErrInvalidFile)
	}
	kind, err := cliparser.ParseKind(s.Kind)
	if err != nil {
		return cliparser.Arg{}, fmt.Errorf(`arg "%s": %w`, s.Name, err)
	}

	var arg cliparser.Arg
	switch kind {
	case cliparser.KindParam:
		arg = cliparser.Param(s.Name)
	case cliparser.KindFlag:
		arg = cliparser.Flag(s.Name)
	default:
		arg = cliparser.Input(s.Name)
	}

	if s.Short != "" {
		if utf8.RuneCountInString(s.Short) != 1 {
			return cliparser.Arg{}, fmt.Errorf(`%w: arg "%s": short must be a single character, got "%s"`,
				ErrInvalidFile, s.Name, s.Short)
		}
		ch, _ := utf8.DecodeRuneInString(s.Short)
		arg = arg.Short(ch)
	}
	return arg, nil
}

// Definitions validates all specs and converts them to definitions
func (f *File) Definitions() ([]cliparser.Arg, error) {
	var errs []error
	res := make([]cliparser.Arg, 0, len(f.Args))
	for _, spec := range f.Args {
		arg, err := spec.Arg()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		res = append(res, arg)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return res, nil
}

// NewParser loads definitions from the file at path and registers them with a new Parser
func NewParser(path string, opts ...cliparser.Option) (*cliparser.Parser, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	args, err := f.Definitions()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p := cliparser.NewParser(opts...)
	if err := p.AddAll(args...); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
