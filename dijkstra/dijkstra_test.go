package dijkstra_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/dijkstra"
)

// lineGraph: 0 → 1 → 2 → ... → n, each step costing w, plus a shortcut 0 → n
// costing shortcut.
func lineGraph(n int, w, shortcut int64) dijkstra.Expander[int] {
	return func(s int, emit func(int, int64)) {
		if s < n {
			emit(s+1, w)
		}
		if s == 0 {
			emit(n, shortcut)
		}
	}
}

// TestSearch_AllReachable checks distances without a target.
func TestSearch_AllReachable(t *testing.T) {
	res, err := dijkstra.Search(0, lineGraph(4, 1, 10))
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, map[int]int64{0: 0, 1: 1, 2: 2, 3: 3, 4: 4}, res.Dist)
}

// TestSearch_ShortcutWins checks that a cheaper direct transition is preferred.
func TestSearch_ShortcutWins(t *testing.T) {
	res, err := dijkstra.Search(0, lineGraph(5, 3, 4),
		dijkstra.WithTarget(func(s int) bool { return s == 5 }),
		dijkstra.WithReturnPath[int](),
	)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, int64(4), res.Distance)
	require.Equal(t, []int{0, 5}, res.Path())
}

// TestSearch_PathThroughChain checks path reconstruction over several hops.
func TestSearch_PathThroughChain(t *testing.T) {
	res, err := dijkstra.Search(0, lineGraph(3, 1, 100),
		dijkstra.WithTarget(func(s int) bool { return s == 3 }),
		dijkstra.WithReturnPath[int](),
	)
	require.NoError(t, err)
	require.Equal(t, int64(3), res.Distance)
	require.Equal(t, []int{0, 1, 2, 3}, res.Path())
	require.Equal(t, []int{0, 1}, res.PathTo(1))
}

// TestSearch_NoPathRecording ensures Path is nil unless requested.
func TestSearch_NoPathRecording(t *testing.T) {
	res, err := dijkstra.Search(0, lineGraph(2, 1, 5),
		dijkstra.WithTarget(func(s int) bool { return s == 2 }))
	require.NoError(t, err)
	require.Nil(t, res.Path())
}

// TestSearch_StructKeys exercises a struct state with a zero-cost move.
func TestSearch_StructKeys(t *testing.T) {
	type pos struct{ x, y int }
	next := func(p pos, emit func(pos, int64)) {
		if p.x < 2 {
			emit(pos{p.x + 1, p.y}, 5)
		}
		if p.y < 2 {
			emit(pos{p.x, p.y + 1}, 0)
		}
	}
	res, err := dijkstra.Search(pos{}, next,
		dijkstra.WithTarget(func(p pos) bool { return p == pos{2, 2} }))
	require.NoError(t, err)
	require.Equal(t, int64(10), res.Distance)
}

func TestSearch_Errors(t *testing.T) {
	_, err := dijkstra.Search[int](0, nil)
	require.ErrorIs(t, err, dijkstra.ErrNilExpander)

	neg := func(s int, emit func(int, int64)) { emit(s+1, -1) }
	_, err = dijkstra.Search(0, neg)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	res, err := dijkstra.Search(0, lineGraph(2, 1, 5),
		dijkstra.WithTarget(func(s int) bool { return s == 99 }))
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
	require.NotNil(t, res)
	require.Len(t, res.Dist, 3)
}

func TestSearch_MaxDistance(t *testing.T) {
	res, err := dijkstra.Search(0, lineGraph(10, 1, 100),
		dijkstra.WithMaxDistance[int](3))
	require.NoError(t, err)
	require.Len(t, res.Dist, 4)
	_, ok := res.Dist[4]
	require.False(t, ok)

	require.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance[int](-1)(&dijkstra.Options[int]{})
	})
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	infinite := func(s int, emit func(int, int64)) { emit(s+1, 1) }
	_, err := dijkstra.Search(0, infinite, dijkstra.WithContext[int](ctx))
	require.True(t, errors.Is(err, context.Canceled))
}
