// Package graph provides a small, thread-safe, string-labelled graph and a
// path-counting walk whose revisit rules are supplied by the caller.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected).
//   - Constant-time edge insertion via nested maps: adjacency[from][to].
//   - Deterministic iteration: Vertices() and Neighbors() return sorted IDs.
//
// Walk(g, start, end, policy) enumerates every path from start to end by
// depth-first search. A Policy sees how often a vertex is already on the
// current path and whether the one-off revisit allowance was spent, so
// "small rooms at most once" and "one small room twice" are both expressed
// as plain functions:
//
//	small := func(id string) bool { return strings.ToLower(id) == id }
//	n, _ := graph.Walk(g, "start", "end", graph.Once(small))
//	m, _ := graph.Walk(g, "start", "end", graph.OnceWithRevisit(small, "start"))
//
// Complexity:
//
//   - AddVertex, AddEdge, HasVertex, HasEdge: O(1) amortized.
//   - Neighbors: O(d log d); Vertices: O(V log V).
//   - Walk: proportional to the number of enumerated paths.
//
// Errors:
//
//   - ErrEmptyVertexID    if an ID is "".
//   - ErrVertexNotFound   if a queried or walked vertex is missing.
//   - ErrGraphNil         if Walk receives a nil graph.
//   - ErrPolicyNil        if Walk receives a nil policy.
package graph
