// Package graph defines the labelled Graph type, its options and the
// sentinel errors shared by graph construction and path walking.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrGraphNil        - a nil *Graph was passed to Walk.
//	ErrPolicyNil       - Walk was called without a Policy.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrGraphNil is returned when a nil *Graph is passed to Walk.
	ErrGraphNil = errors.New("graph: graph is nil")

	// ErrPolicyNil is returned when Walk receives a nil Policy.
	ErrPolicyNil = errors.New("graph: policy is nil")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is an unweighted, string-labelled adjacency set.
//
// Undirected graphs mirror every edge in adjacency[to][from].
// Parallel edges collapse into one; self-loops are stored like any other edge.
// mu guards adjacency.
type Graph struct {
	mu       sync.RWMutex
	directed bool

	// adjacency[from][to] = struct{}{}
	adjacency map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. By default, Graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make(map[string]map[string]struct{})}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
