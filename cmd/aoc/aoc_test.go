package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/cache"
	"github.com/katalvlaran/aoc2021/puzzle"
)

const depths = "199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeInput(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 49)
	assert.Equal(t, "day01/part1", lines[0])
	assert.Equal(t, "day25/part1", lines[len(lines)-1])
}

func TestRunText(t *testing.T) {
	path := writeInput(t, t.TempDir(), "depths.txt", depths)

	out, err := execute(t, "run", "1", "-i", path)
	require.NoError(t, err)
	require.Equal(t, "day01/part1: 7\nday01/part2: 5\n", out)
}

func TestRunJSON(t *testing.T) {
	path := writeInput(t, t.TempDir(), "depths.txt", depths)

	out, err := execute(t, "run", "1", "2", "-i", path, "--json")
	require.NoError(t, err)

	var r result
	require.NoError(t, sonic.UnmarshalString(strings.TrimSpace(out), &r))
	assert.Equal(t, 1, r.Day)
	assert.Equal(t, 2, r.Part)
	assert.Equal(t, "5", r.Answer)
	assert.False(t, r.Cached)
}

func TestRunCachedAcrossInvocations(t *testing.T) {
	path := writeInput(t, t.TempDir(), "depths.txt", depths)
	t.Setenv("AOC_CACHE_ENABLED", "true")
	t.Setenv("AOC_CACHE_DIR", t.TempDir())

	var runs []result
	for range 2 {
		out, err := execute(t, "run", "1", "1", "-i", path, "--json")
		require.NoError(t, err)
		var r result
		require.NoError(t, sonic.UnmarshalString(strings.TrimSpace(out), &r))
		runs = append(runs, r)
	}
	assert.False(t, runs[0].Cached)
	assert.True(t, runs[1].Cached)
	assert.Equal(t, "7", runs[1].Answer)

	out, err := execute(t, "run", "1", "1", "-i", path, "--json", "--no-cache")
	require.NoError(t, err)
	var r result
	require.NoError(t, sonic.UnmarshalString(strings.TrimSpace(out), &r))
	assert.False(t, r.Cached)
}

func TestRunIterations(t *testing.T) {
	path := writeInput(t, t.TempDir(), "fish.txt", "3,4,3,1,2\n")

	out, err := execute(t, "run", "6", "1", "-i", path, "--iterations", "18")
	require.NoError(t, err)
	require.Equal(t, "day06/part1: 26\n", out)
}

func TestRunDefaultInputDir(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "day01.txt", depths)
	t.Setenv("AOC_INPUT_DIR", dir)

	out, err := execute(t, "run", "1", "1")
	require.NoError(t, err)
	require.Equal(t, "day01/part1: 7\n", out)
}

func TestRunMultilineAnswer(t *testing.T) {
	path := writeInput(t, t.TempDir(), "cucumbers.txt", "...>>>>>...\n")

	out, err := execute(t, "run", "25", "-i", path, "--iterations", "1")
	require.NoError(t, err)
	require.Equal(t, "day25/part1: ...>>>>.>..\n", out)
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "run", "26")
	require.ErrorIs(t, err, puzzle.ErrBadKey)

	_, err = execute(t, "run", "1", "3")
	require.ErrorIs(t, err, puzzle.ErrBadKey)

	_, err = execute(t, "run", "1", "-i", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "run")
	require.Error(t, err)
}

func TestRunBadConfigIsNotPrintedByCobra(t *testing.T) {
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"list", "--config", filepath.Join(t.TempDir(), "missing.yaml")})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
	assert.NotEqual(t, zerolog.Disabled, failureLogger().GetLevel())
}

func TestSolveUsesCache(t *testing.T) {
	ctx := context.Background()
	store, err := cache.NewFileStore(t.TempDir(), time.Hour)
	require.NoError(t, err)

	first, err := solve(ctx, store, 1, 1, []byte(depths), puzzle.Default())
	require.NoError(t, err)
	require.False(t, first.Cached)

	second, err := solve(ctx, store, 1, 1, []byte(depths), puzzle.Default())
	require.NoError(t, err)
	require.True(t, second.Cached)
	require.Equal(t, first.Answer, second.Answer)
}
