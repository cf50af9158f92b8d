package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/katalvlaran/advent/cmd/aoc"
	"github.com/katalvlaran/advent/days"
)

// samples are the worked examples the days package tests against.
var samples = filepath.Join("..", "..", "days", "testdata")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	b := new(bytes.Buffer)
	cmd := aoc.NewCmd()
	cmd.SetOut(b)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return b.String(), err
}

func tempCfgFile(t *testing.T, cfg string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	return path
}

func TestRun_Inspect(t *testing.T) {
	out, err := execute(t, "run", "1", filepath.Join(samples, "day1.txt"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Day 1\n"), out)
	assert.Contains(t, out, "Part1: (int) 24000")
	assert.Contains(t, out, "Part2: (int) 45000")
}

func TestRun_InputsDir(t *testing.T) {
	out, err := execute(t, "run", "18", "--inputs", samples, "--trace", "--verbosity", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "Part1: (int) 64")
	assert.Contains(t, out, "Part2: (int) 58")
}

func TestRun_Table(t *testing.T) {
	out, err := execute(t, "run", "6", filepath.Join(samples, "day6.txt"), "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "PART 1")
	assert.Contains(t, out, " 6 ")
	assert.Contains(t, out, " 19 ")
}

func TestRun_ConfigPrecedence(t *testing.T) {
	cfg := tempCfgFile(t, "format: table\ninputs: "+samples+"\n")

	out, err := execute(t, "run", "3", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "PART 1", "format comes from the file")
	assert.Contains(t, out, " 157 ")

	out, err = execute(t, "run", "3", "--config", cfg, "--format", "inspect")
	require.NoError(t, err)
	assert.Contains(t, out, "Part1: (int) 157", "a flag beats the file")
}

func TestRun_Errors(t *testing.T) {
	tests := map[string]struct {
		args   []string
		target error
	}{
		"no day":           {args: []string{"run"}},
		"day not a number": {args: []string{"run", "one"}},
		"unsolved day":     {args: []string{"run", "2", filepath.Join(samples, "day1.txt")}, target: aoc.ErrUnknownDay},
		"missing input":    {args: []string{"run", "1", filepath.Join(samples, "nope.txt")}, target: os.ErrNotExist},
		"bad input":        {args: []string{"run", "6", filepath.Join(samples, "day1.txt")}, target: days.ErrBadInput},
		"bad format":       {args: []string{"run", "1", "--format", "xml"}},
		"bad verbosity":    {args: []string{"list", "--verbosity", "loud"}},
		"missing config":   {args: []string{"list", "--config", "config-file-test.yaml"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
		})
	}
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "1\n3\n6\n12\n15\n16\n18\n20\n21\n25\n", out)

	out, err = execute(t, "list", "--format", "table", "--inputs", "in")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join("in", "day16.txt"))
}
