package cliparser

import (
	"os"
)

// CommandLine is a default Parser that is used by the package functions.
var CommandLine = NewParser()

// Add registers the definition with the default Parser
func Add(arg Arg) error {
	return CommandLine.Add(arg)
}

// AddAll registers the definitions with the default Parser
func AddAll(args ...Arg) error {
	return CommandLine.AddAll(args...)
}

// AddStruct registers definitions built from the struct tags with the default Parser.
// See StructArgs
func AddStruct(p any) error {
	return CommandLine.AddStruct(p)
}

// Parse parses the process command line (without the program name) using the default Parser
func Parse() (Result, error) {
	return CommandLine.Parse(os.Args[1:])
}
