// Package dijkstra provides Dijkstra's shortest-path search over implicit,
// generically-keyed state spaces with non-negative transition costs.
//
// Overview:
//
//   - Search computes the minimum-cost distance from a start state to every
//     reachable state, or stops at the first state matching a target predicate.
//   - States are any comparable type K. A grid cell index, a packed board
//     string and a small struct all work as keys without conversion.
//   - Transitions come from an Expander[K], so huge or unbounded spaces are
//     explored only as far as the cheapest frontier requires.
//
// When to use:
//
//   - Weighted grid walks (risk maps, cost fields) keyed by cell index.
//   - Puzzle state searches where each move has an energy or step cost.
//
// Key features:
//
//   - Functional options keep the call site short: WithTarget, WithReturnPath,
//     WithMaxDistance, WithContext.
//   - ReturnPath: records predecessors so Result.Path rebuilds the route.
//   - MaxDistance: states beyond the cap are never pushed.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), heap uses the "lazy decrease-key" strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilExpander:
//     Returned if next is nil.
//   - ErrNegativeWeight:
//     Returned (wrapped with the offending transition) if the expander emits a
//     negative cost. Detection is lazy: only emitted transitions are checked.
//   - ErrNoPath:
//     Returned together with the partial Result when WithTarget was used and
//     no matching state is reachable.
//   - ErrBadMaxDistance:
//     Panic message if WithMaxDistance receives a negative value.
//
// Example:
//
//	res, err := dijkstra.Search(0, func(s int, emit func(int, int64)) {
//	    if s < 10 {
//	        emit(s+1, 1)
//	        emit(s+3, 2)
//	    }
//	}, dijkstra.WithTarget(func(s int) bool { return s == 9 }))
//	// res.Distance == 6
package dijkstra
