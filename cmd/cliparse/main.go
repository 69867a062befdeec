// Command cliparse matches command line tokens against argument definitions
// loaded from a YAML, JSON or HCL file and prints the result as JSON.
//
// Usage:
//
//	cliparse parse --defs args.yaml -- --default def_arg filename -s s_arg -f pathname
//	cliparse schema
//	cliparse version
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/alecthomas/kong"

	cliparser "github.com/cardinalby/go-cli-parser"
	"github.com/cardinalby/go-cli-parser/argsfile"
	"github.com/cardinalby/go-cli-parser/internal/logger"
)

const (
	exitCodeError        = 1
	exitCodeInvalidInput = 2
)

// CLI defines the command-line interface.
type CLI struct {
	Parse   ParseCmd   `cmd:"" help:"Parse tokens against a definitions file."`
	Schema  SchemaCmd  `cmd:"" help:"Print JSON Schema of the definitions file."`
	Version VersionCmd `cmd:"" help:"Show version information."`

	LogLevel  string `help:"Log level (debug, info, warn, error)." env:"CLIPARSE_LOG_LEVEL" default:"info"`
	LogFormat string `help:"Log format (simple, text, json)." env:"CLIPARSE_LOG_FORMAT" default:"simple"`
}

// appContext is bound to the Run methods of the commands
type appContext struct {
	stdout io.Writer
	logger *slog.Logger
}

// ParseCmd parses tokens given after "--".
type ParseCmd struct {
	Defs   string   `short:"d" required:"" help:"Definitions file (.yaml, .yml, .json or .hcl)." type:"path"`
	Tokens []string `arg:"" optional:"" help:"Tokens to parse. Put them after -- so they are not treated as cliparse flags."`
}

func (c *ParseCmd) Run(app *appContext) error {
	parser, err := argsfile.NewParser(c.Defs, cliparser.WithLogger(app.logger))
	if err != nil {
		return err
	}
	app.logger.Debug("definitions loaded", "file", c.Defs, "count", parser.Len())

	res, err := parser.Parse(c.Tokens)
	if err != nil {
		return &exitError{code: exitCodeInvalidInput, err: err}
	}
	return writeJSON(app.stdout, res, false)
}

// SchemaCmd prints JSON Schema of the definitions file format.
type SchemaCmd struct {
	Compact bool `short:"c" help:"Compact JSON output (no indentation)."`
}

func (c *SchemaCmd) Run(app *appContext) error {
	return writeJSON(app.stdout, argsfile.Schema(), c.Compact)
}

// VersionCmd shows version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(app *appContext) error {
	version := "dev"
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			version = info.Main.Version
		}
	}
	_, err := fmt.Fprintf(app.stdout, "cliparse version %s\n", version)
	return err
}

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	if err := loadDotEnv(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitCodeError
	}

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("cliparse"),
		kong.Description("Match command line tokens against argument definitions."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitCodeError
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitCodeError
	}

	level, err := logger.ParseLevel(cli.LogLevel)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitCodeError
	}
	log, err := logger.New(level, stderr, cli.LogFormat)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitCodeError
	}

	if err := ctx.Run(&appContext{stdout: stdout, logger: log}); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			_, _ = fmt.Fprintln(stderr, exitErr.Error())
			return exitErr.code
		}
		log.Error("command failed", "command", ctx.Command(), "error", err)
		return exitCodeError
	}
	return 0
}

func writeJSON(w io.Writer, v any, compact bool) error {
	encoder := json.NewEncoder(w)
	if !compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
