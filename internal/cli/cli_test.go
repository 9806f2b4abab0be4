package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabpeek"
	"github.com/bjaus/tabpeek/internal/cli"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the command against an empty config file so presentation
// does not depend on the machine running the tests.
func run(t *testing.T, stdin io.Reader, args ...string) result {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, nil, 0o600))
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	var stdout, stderr bytes.Buffer
	err := cli.Run(context.Background(), append([]string{"--config", cfg}, args...), stdin, &stdout, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestTSVByExtension(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "data.tsv", "name\tage\nAlice\t30\nBob\t25\n")
	res := run(t, nil, path)
	require.NoError(t, res.err)
	want := strings.Join([]string{
		"╭───────┬─────╮",
		"│ name  │ age │",
		"│ str   │ i64 │",
		"├───────┼─────┤",
		"│ Alice │  30 │",
		"│ Bob   │  25 │",
		"╰───────┴─────╯",
		"shape: (2, 2)",
		"",
	}, "\n")
	assert.Equal(t, want, res.stdout)
	assert.Empty(t, res.stderr)
}

func TestSelectHead(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	b.WriteString("id,name,age\n")
	for i := range 25 {
		fmt.Fprintf(&b, "%d,p%d,%d\n", i, i, 20+i)
	}
	path := writeFile(t, "data.csv", b.String())

	res := run(t, nil, path, "-s", "name,age", "--head", "-m")
	require.NoError(t, res.err)
	out := lines(res.stdout)
	require.Len(t, out, 13)
	assert.Equal(t, "| name | age |", out[0])
	assert.Equal(t, "| p0   |  20 |", out[2])
	assert.Equal(t, "| p9   |  29 |", out[11])
	assert.Equal(t, "shape: (10, 2)", out[12])
}

func TestConflictBeforeOpening(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "data.csv")
	res := run(t, nil, missing, "-c", "-D")
	require.ErrorIs(t, res.err, tabpeek.ErrConflictingFlags)
	assert.NotErrorIs(t, res.err, tabpeek.ErrSourceNotFound)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(res.err))
	assert.Empty(t, res.stdout)
}

func TestMissingParquet(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "missing.parquet")
	res := run(t, nil, missing)
	require.ErrorIs(t, res.err, tabpeek.ErrSourceNotFound)
	assert.Equal(t, cli.ExitError, cli.ExitCode(res.err))
	assert.Empty(t, res.stdout)
}

func TestStdinDelimiter(t *testing.T) {
	t.Parallel()
	tests := map[string][]string{
		"implicit": {"--delimiter", ";", "-c"},
		"dash":     {"-", "-d", ";", "-c"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := run(t, strings.NewReader("a;b,c\n1;2,3\n"), args...)
			require.NoError(t, res.err)
			assert.Equal(t, "a\nb,c\n", res.stdout)
		})
	}
}

func TestColumnsOnlyIdempotent(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "data.csv", "z,a,m,a\n1,2,3,4\n")
	first := run(t, nil, path, "-c")
	second := run(t, nil, path, "-c")
	require.NoError(t, first.err)
	require.NoError(t, second.err)
	assert.Equal(t, "z\na\nm\na\n", first.stdout)
	assert.Equal(t, first.stdout, second.stdout)
}

func TestFailuresPrintNothing(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	ragged := writeFile(t, "ragged.csv", "a,b\n1,2\n3\n")
	tests := map[string]struct {
		args   []string
		target error
		code   int
	}{
		"unparseable":       {args: []string{ragged}, target: tabpeek.ErrUnparseableSource, code: cli.ExitError},
		"directory":         {args: []string{dir}, target: tabpeek.ErrSourceNotFound, code: cli.ExitError},
		"head and tail":     {args: []string{ragged, "--head", "--tail"}, target: tabpeek.ErrConflictingFlags, code: cli.ExitUsage},
		"bad max rows":      {args: []string{ragged, "-n", "0"}, target: tabpeek.ErrInvalidArgument, code: cli.ExitUsage},
		"non-numeric rows":  {args: []string{ragged, "-n", "ten"}, target: tabpeek.ErrInvalidArgument, code: cli.ExitUsage},
		"unknown flag":      {args: []string{ragged, "--colour"}, target: tabpeek.ErrInvalidArgument, code: cli.ExitUsage},
		"two paths":         {args: []string{ragged, ragged}, target: tabpeek.ErrInvalidArgument, code: cli.ExitUsage},
		"bad format":        {args: []string{ragged, "--format", "xlsx"}, target: tabpeek.ErrUnrecognizedFormat, code: cli.ExitUsage},
		"strict stdin":      {args: []string{"--strict"}, target: tabpeek.ErrUnrecognizedFormat, code: cli.ExitUsage},
		"bad delimiter":     {args: []string{ragged, "-d", ";;"}, target: tabpeek.ErrInvalidArgument, code: cli.ExitUsage},
		"nul delimiter":     {args: []string{ragged, "-d", "\x00"}, target: tabpeek.ErrInvalidArgument, code: cli.ExitUsage},
		"select unknown":    {args: []string{ragged, "-s", "nope", "-n", "1"}, target: tabpeek.ErrUnparseableSource, code: cli.ExitError},
		"missing config":    {args: []string{ragged, "--config", filepath.Join(dir, "none.yaml")}, target: tabpeek.ErrInvalidArgument, code: cli.ExitUsage},
		"describe and head": {args: []string{ragged, "-D", "--head"}, target: tabpeek.ErrConflictingFlags, code: cli.ExitUsage},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := run(t, nil, tt.args...)
			require.ErrorIs(t, res.err, tt.target)
			assert.Equal(t, tt.code, cli.ExitCode(res.err))
			assert.Empty(t, res.stdout)
		})
	}
}

func TestBudgetStopsBeforeBadRows(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "data.csv", "a,b\n1,2\n3\n")
	res := run(t, nil, path, "-n", "1", "-c")
	require.ErrorIs(t, res.err, tabpeek.ErrConflictingFlags)

	res = run(t, nil, path, "-n", "1", "-m")
	require.NoError(t, res.err)
	assert.Equal(t, "|   a |   b |\n| --: | --: |\n|   1 |   2 |\nshape: (1, 2)\n", res.stdout)
}

func TestConfigFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "data.csv", "a\n1\n2\n3\n4\n5\n")
	cfg := writeFile(t, "tabpeek.toml", "border = \"ascii\"\nmax_rows = 2\nshow_types = false\nshow_shape = false\n")
	res := run(t, nil, path, "--config", cfg)
	require.NoError(t, res.err)
	want := strings.Join([]string{
		"+---+",
		"| a |",
		"+---+",
		"| 1 |",
		"| … |",
		"| 5 |",
		"+---+",
		"",
	}, "\n")
	assert.Equal(t, want, res.stdout)
}

func TestSampleSeed(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "data.csv", "a\n1\n2\n3\n4\n5\n6\n7\n8\n")
	first := run(t, nil, path, "--sample", "-n", "3", "--seed", "11", "-m")
	second := run(t, nil, path, "--sample", "-n", "3", "--seed", "11", "-m")
	require.NoError(t, first.err)
	assert.Equal(t, first.stdout, second.stdout)
	assert.Len(t, lines(first.stdout), 6)
}

func TestTail(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "data.csv", "a\n1\n2\n3\n")
	res := run(t, nil, path, "--tail", "-n", "1", "-m")
	require.NoError(t, res.err)
	assert.Equal(t, "|   a |\n| --: |\n|   3 |\nshape: (1, 1)\n", res.stdout)
}

func TestVerbose(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "data.csv", "a\n1\n")
	res := run(t, nil, path, "-v", "-c")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "resolved config")
	assert.Contains(t, res.stderr, "loaded table")
	assert.NotContains(t, res.stderr, "presentation")

	res = run(t, nil, path, "-vv", "-c")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "presentation")
}

func TestVersion(t *testing.T) {
	t.Parallel()
	res := run(t, nil, "--version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, cli.Version)
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, cli.ExitOK, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(&tabpeek.ConflictError{First: "head", Second: "tail"}))
	assert.Equal(t, cli.ExitError, cli.ExitCode(tabpeek.ErrUnreadableSource))
}
