package graph

import "fmt"

// Policy decides whether a walk may step into id.
//
// onPath is how many times id already appears on the current path and
// revisitUsed reports whether the single revisit allowance has been spent on
// this path. The policy returns ok=false to refuse the step, and spend=true
// when the step consumes the allowance.
type Policy func(id string, onPath int, revisitUsed bool) (ok, spend bool)

// Once allows every vertex for which limited reports true to appear at most
// once on a path. Other vertices are unrestricted.
func Once(limited func(id string) bool) Policy {
	return func(id string, onPath int, _ bool) (bool, bool) {
		return !limited(id) || onPath == 0, false
	}
}

// OnceWithRevisit is like Once, but a single limited vertex per path may be
// entered a second time. Vertices listed in never are excluded from the
// allowance.
func OnceWithRevisit(limited func(id string) bool, never ...string) Policy {
	excluded := make(map[string]bool, len(never))
	for _, id := range never {
		excluded[id] = true
	}

	return func(id string, onPath int, revisitUsed bool) (bool, bool) {
		if !limited(id) || onPath == 0 {
			return true, false
		}
		if revisitUsed || excluded[id] || onPath > 1 {
			return false, false
		}

		return true, true
	}
}

// walker holds the mutable DFS state for Walk.
type walker struct {
	g       *Graph
	end     string
	policy  Policy
	onPath  map[string]int
	revisit bool
}

// Walk counts the distinct paths from start to end, stepping only where
// policy allows. Reaching end terminates a path; end is never passed through.
//
// Errors:
//   - ErrGraphNil, ErrPolicyNil for nil arguments.
//   - ErrVertexNotFound if start or end is missing.
//
// Complexity: proportional to the number of paths enumerated.
func Walk(g *Graph, start, end string, policy Policy) (int, error) {
	// 1. Validate inputs
	if g == nil {
		return 0, ErrGraphNil
	}
	if policy == nil {
		return 0, ErrPolicyNil
	}
	for _, id := range []string{start, end} {
		if !g.HasVertex(id) {
			return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}

	// 2. Enumerate under a read lock; the walk never mutates the graph
	g.mu.RLock()
	defer g.mu.RUnlock()
	w := &walker{g: g, end: end, policy: policy, onPath: map[string]int{start: 1}}

	return w.count(start), nil
}

func (w *walker) count(u string) int {
	if u == w.end {
		return 1
	}
	total := 0
	for v := range w.g.adjacency[u] {
		ok, spend := w.policy(v, w.onPath[v], w.revisit)
		if !ok {
			continue
		}
		w.onPath[v]++
		if spend {
			w.revisit = true
		}
		total += w.count(v)
		if spend {
			w.revisit = false
		}
		w.onPath[v]--
	}

	return total
}
