package cache_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/cache"
)

func TestKey(t *testing.T) {
	a := cache.Key(1, 2, []byte("199\n200\n"))
	require.Equal(t, a, cache.Key(1, 2, []byte("199\n200\n")))
	require.NotEqual(t, a, cache.Key(1, 1, []byte("199\n200\n")))
	require.NotEqual(t, a, cache.Key(1, 2, []byte("199\n201\n")))
	require.True(t, strings.HasPrefix(a, "day01:part2:"))
	require.Len(t, strings.TrimPrefix(a, "day01:part2:"), 64)
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := cache.NewFileStore(dir, time.Hour)
	require.NoError(t, err)

	key := cache.Key(6, 2, []byte("3,4,3,1,2\n"))
	_, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.False(t, ok)

	want := cache.Record{Day: 6, Part: 2, Answer: "26984457539", ElapsedMS: 0.25}
	require.NoError(t, s.Set(ctx, key, want))

	// A second store over the same directory sees the record.
	reopened, err := cache.NewFileStore(dir, time.Hour)
	require.NoError(t, err)
	got, ok, err := reopened.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestFileStore_Expiry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := cache.NewFileStore(dir, time.Minute)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "day01:part1:abc", cache.Record{Day: 1, Part: 1, Answer: "7"}))

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(files[0], old, old))

	_, ok, err := s.Get(ctx, "day01:part1:abc")
	require.NoError(t, err)
	require.False(t, ok)

	// Without a TTL the same file is still served.
	forever, err := cache.NewFileStore(dir, 0)
	require.NoError(t, err)
	_, ok, err = forever.Get(ctx, "day01:part1:abc")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestNewFileStore_Errors(t *testing.T) {
	_, err := cache.NewFileStore("", time.Hour)
	require.ErrorIs(t, err, cache.ErrNoDir)
}

func TestNewRedisStore_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := cache.NewRedisStore(ctx, "", "aoc", time.Hour)
	require.ErrorIs(t, err, cache.ErrNoURL)

	_, err = cache.NewRedisStore(ctx, "not-a-url://", "aoc", time.Hour)
	require.Error(t, err)
}
