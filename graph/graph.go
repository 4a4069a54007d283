// File: graph.go
// Role: Vertex and edge lifecycle & queries.
//
// Determinism:
//   - Vertices() and Neighbors() return IDs sorted lexicographically ascending.
//
// Concurrency:
//   - All methods are safe for concurrent use; adjacency is protected by mu.
package graph

import (
	"fmt"
	"sort"
)

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(id)

	return nil
}

// AddEdge connects from→to, creating missing endpoints. In an undirected
// graph the reverse edge is added as well. Adding an existing edge is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if either endpoint is empty.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return fmt.Errorf("%w: edge %q-%q", ErrEmptyVertexID, from, to)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(from)[to] = struct{}{}
	if !g.directed {
		g.ensure(to)[from] = struct{}{}
	} else {
		g.ensure(to)
	}

	return nil
}

// ensure returns the adjacency bucket of id, creating it if needed.
// Caller must hold mu for writing.
func (g *Graph) ensure(id string) map[string]struct{} {
	bucket, ok := g.adjacency[id]
	if !ok {
		bucket = make(map[string]struct{})
		g.adjacency[id] = bucket
	}

	return bucket
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether a from→to edge exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Neighbors returns the sorted IDs reachable from id by a single edge.
//
// Errors:
//   - ErrVertexNotFound: if id is missing.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return sortedKeys(bucket), nil
}

// Vertices returns all vertex IDs in ascending order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// EdgeCount returns the number of stored edges; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var n, loops int
	for from, bucket := range g.adjacency {
		n += len(bucket)
		if _, ok := bucket[from]; ok {
			loops++
		}
	}
	if g.directed {
		return n
	}

	return (n-loops)/2 + loops
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
