package graph_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/aoc2021/graph"
)

func small(id string) bool { return strings.ToLower(id) == id }

// GraphSuite covers construction and query semantics.
type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) { suite.Run(t, new(GraphSuite)) }

func (s *GraphSuite) TestAddVertex() {
	g := graph.NewGraph()
	s.Require().ErrorIs(g.AddVertex(""), graph.ErrEmptyVertexID)
	s.Require().NoError(g.AddVertex("a"))
	s.Require().NoError(g.AddVertex("a"))
	s.True(g.HasVertex("a"))
	s.False(g.HasVertex("b"))
	s.Equal([]string{"a"}, g.Vertices())
}

func (s *GraphSuite) TestUndirectedMirrors() {
	g := graph.NewGraph()
	s.Require().NoError(g.AddEdge("b", "a"))
	s.Require().NoError(g.AddEdge("b", "c"))
	s.Require().NoError(g.AddEdge("a", "b"))
	s.False(g.Directed())
	s.True(g.HasEdge("a", "b"))
	s.True(g.HasEdge("c", "b"))
	s.Equal(2, g.EdgeCount())

	nbrs, err := g.Neighbors("b")
	s.Require().NoError(err)
	s.Equal([]string{"a", "c"}, nbrs)
	s.Equal([]string{"a", "b", "c"}, g.Vertices())
}

func (s *GraphSuite) TestDirected() {
	g := graph.NewGraph(graph.WithDirected(true))
	s.Require().NoError(g.AddEdge("x", "y"))
	s.True(g.HasEdge("x", "y"))
	s.False(g.HasEdge("y", "x"))
	s.True(g.HasVertex("y"))
	nbrs, err := g.Neighbors("y")
	s.Require().NoError(err)
	s.Empty(nbrs)
	s.Equal(1, g.EdgeCount())
}

func (s *GraphSuite) TestErrors() {
	g := graph.NewGraph()
	s.ErrorIs(g.AddEdge("", "a"), graph.ErrEmptyVertexID)
	_, err := g.Neighbors("missing")
	s.ErrorIs(err, graph.ErrVertexNotFound)
}

// TestConcurrentAddEdge ensures concurrent writers do not race.
func TestConcurrentAddEdge(t *testing.T) {
	g := graph.NewGraph()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = g.AddEdge(string(rune('a'+i)), string(rune('A'+j%26)))
			}
		}(i)
	}
	wg.Wait()
	require.Len(t, g.Vertices(), 8+26)
}

//----------------------------------------------------------------------------//
// Walk
//----------------------------------------------------------------------------//

func build(t *testing.T, edges string) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for _, line := range strings.Fields(edges) {
		a, b, ok := strings.Cut(line, "-")
		require.True(t, ok, line)
		require.NoError(t, g.AddEdge(a, b))
	}

	return g
}

const tiny = "start-A start-b A-c A-b b-d A-end b-end"

func TestWalk_Once(t *testing.T) {
	g := build(t, tiny)
	n, err := graph.Walk(g, "start", "end", graph.Once(small))
	require.NoError(t, err)
	require.Equal(t, 10, n)
}

func TestWalk_OnceWithRevisit(t *testing.T) {
	g := build(t, tiny)
	n, err := graph.Walk(g, "start", "end", graph.OnceWithRevisit(small, "start"))
	require.NoError(t, err)
	require.Equal(t, 36, n)
}

func TestWalk_Errors(t *testing.T) {
	g := build(t, tiny)
	_, err := graph.Walk(nil, "start", "end", graph.Once(small))
	require.ErrorIs(t, err, graph.ErrGraphNil)
	_, err = graph.Walk(g, "start", "end", nil)
	require.ErrorIs(t, err, graph.ErrPolicyNil)
	_, err = graph.Walk(g, "start", "nowhere", graph.Once(small))
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestWalk_Unreachable(t *testing.T) {
	g := build(t, "start-a end-b")
	n, err := graph.Walk(g, "start", "end", graph.Once(small))
	require.NoError(t, err)
	require.Zero(t, n)
}
