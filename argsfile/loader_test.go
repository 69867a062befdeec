package argsfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	cliparser "github.com/cardinalby/go-cli-parser"
	"github.com/stretchr/testify/require"
)

const testYAML = `
args:
  - name: default
    kind: input
  - name: short
    kind: input
    short: s
  - name: flag
    kind: flag
    short: f
    description: toggles something
  - name: file
    kind: param
  - name: path
    kind: param
`

const testHCL = `
arg "default" {
  kind = "input"
}
arg "short" {
  kind  = "input"
  short = "s"
}
arg "flag" {
  kind        = "flag"
  short       = "f"
  description = "toggles something"
}
arg "file" {
  kind = "param"
}
arg "path" {
  kind = "param"
}
`

var expectedArgs = []cliparser.Arg{
	cliparser.Input("default"),
	cliparser.Input("short").Short('s'),
	cliparser.Flag("flag").Short('f'),
	cliparser.Param("file"),
	cliparser.Param("path"),
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		fileName string
		content  string
	}{
		{"args.yaml", testYAML},
		{"args.yml", testYAML},
		{"args.hcl", testHCL},
		{"args.json", `{"args": [
			{"name": "default", "kind": "input"},
			{"name": "short", "kind": "input", "short": "s"},
			{"name": "flag", "kind": "flag", "short": "f"},
			{"name": "file", "kind": "param"},
			{"name": "path", "kind": "param"}
		]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.fileName, func(t *testing.T) {
			f, err := Load(writeTempFile(t, tc.fileName, tc.content))
			require.NoError(t, err)
			args, err := f.Definitions()
			require.NoError(t, err)
			require.Equal(t, expectedArgs, args)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	t.Run("no file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("unknown yaml key", func(t *testing.T) {
		_, err := ParseYAML([]byte("args:\n  - name: x\n    kind: flag\n    alias: y\n"))
		require.ErrorIs(t, err, ErrInvalidFile)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := ParseYAML([]byte("args: [\n"))
		require.ErrorIs(t, err, ErrInvalidFile)
	})

	t.Run("hcl syntax", func(t *testing.T) {
		_, err := ParseHCL([]byte(`arg "x" {`), "bad.hcl")
		require.ErrorIs(t, err, ErrInvalidFile)
	})

	t.Run("hcl missing kind", func(t *testing.T) {
		_, err := ParseHCL([]byte(`arg "x" {}`), "bad.hcl")
		require.ErrorIs(t, err, ErrInvalidFile)
	})
}

func TestFile_Definitions(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		f, err := ParseYAML([]byte(""))
		require.NoError(t, err)
		args, err := f.Definitions()
		require.NoError(t, err)
		require.Empty(t, args)
	})

	t.Run("invalid specs are all reported", func(t *testing.T) {
		f := &File{Args: []ArgSpec{
			{Name: "", Kind: "flag"},
			{Name: "x", Kind: "option"},
			{Name: "y", Kind: "flag", Short: "yy"},
			{Name: "z", Kind: "flag", Short: "z"},
		}}
		_, err := f.Definitions()
		require.ErrorIs(t, err, ErrInvalidFile)
		require.ErrorIs(t, err, cliparser.ErrInvalidKind)
		require.ErrorContains(t, err, `arg "y"`)
	})
}

func TestNewParser(t *testing.T) {
	t.Parallel()

	p, err := NewParser(writeTempFile(t, "args.yaml", testYAML))
	require.NoError(t, err)
	require.Equal(t, len(expectedArgs), p.Len())

	res, err := p.Parse([]string{"--default", "def_arg", "filename", "-s", "s_arg", "-f", "pathname"})
	require.NoError(t, err)
	require.Len(t, res, 5)

	_, err = NewParser(writeTempFile(t, "dup.yaml", "args:\n  - {name: a, kind: flag}\n  - {name: a, kind: input}\n"))
	require.ErrorIs(t, err, cliparser.ErrArgRedefined)
}

func TestSchema(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Schema())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, schemaID, decoded["$id"])
	props, ok := decoded["properties"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, props, "args")
}
