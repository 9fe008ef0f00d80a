package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArthurMatthys/aoc/crucible"
)

const sample = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// execute runs the root command once. Flags keep their values between
// runs, so each test sets every flag it depends on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	logger.SetOutput(io.Discard)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	input := writeFile(t, "input.txt", sample)
	out, err := execute(t, "solve", "--config", "", "-p", "all", "--baseline", input)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "crucible (min=0 max=3): 102", lines[0])
	assert.Equal(t, "ultra (min=3 max=10): 94", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "unconstrained: "), lines[2])
}

func TestSolveCommandHugeMax(t *testing.T) {
	input := writeFile(t, "input.txt", "12\n34\n")
	out, err := execute(t, "solve", "--config", "", "--baseline=false", "--min", "0", "--max", "100000000000", input)
	require.NoError(t, err)
	assert.Equal(t, "custom (min=0 max=100000000000): 6\n", out)
}

func TestRouteCommand(t *testing.T) {
	input := writeFile(t, "input.txt", "111111111111\n999999999991\n999999999991\n999999999991\n999999999991\n")
	out, err := execute(t, "route", "--config", "", "--min", "3", "--max", "10", "--plain", input)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "custom (min=3 max=10): 71 over "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "*>"), lines[1])
	assert.True(t, strings.HasSuffix(lines[5], ">"), lines[5])
}

func TestRouteCommandRejectsBadGrid(t *testing.T) {
	input := writeFile(t, "bad.txt", "12\n3x\n")
	_, err := execute(t, "route", "--config", "", "--plain", input)
	require.Error(t, err)
	assert.True(t, crucible.IsParseError(err))
	assert.ErrorIs(t, err, crucible.ErrNotDigit)
	assert.Contains(t, err.Error(), "bad.txt")
}

func TestPresetsCommand(t *testing.T) {
	cfg := writeFile(t, "presets.yaml", "wobbly:\n  min_run: 1\n  max_run: 5\n")
	out, err := execute(t, "presets", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t,
		"crucible     min=0 max=3\n"+
			"ultra        min=3 max=10\n"+
			"wobbly       min=1 max=5\n",
		out)

	bad := writeFile(t, "bad.yaml", "broken:\n  min_run: 4\n  max_run: 2\n")
	_, err = execute(t, "presets", "--config", bad)
	assert.ErrorIs(t, err, crucible.ErrRunOrder)
}
