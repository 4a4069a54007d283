// Package dijkstra defines core types and configuration options
// for best-first shortest-path search over implicit state spaces.
//
// Search computes the minimum-cost path from a start state to a target state
// (or to every reachable state) when transitions have non-negative costs.
// States are any comparable Go value: a grid index, a packed board string,
// a small struct. Successors are produced on demand by an Expander, so the
// state graph is never materialised.
//
// Options:
//
//	– WithTarget:       stop as soon as a state satisfying the predicate is settled.
//	– WithReturnPath:   keep predecessors so Result.Path can rebuild the route.
//	– WithMaxDistance:  do not explore states whose distance would exceed the cap.
//	– WithContext:      abort with ctx.Err() once the context is done.
//
// Errors (sentinel):
//
//	– ErrNilExpander     if next is nil.
//	– ErrNegativeWeight  if the expander emits a negative cost.
//	– ErrNoPath          if a target was requested but never reached.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panics in the option constructor).
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrNilExpander indicates that no successor function was supplied.
	ErrNilExpander = errors.New("dijkstra: expander is nil")

	// ErrNegativeWeight indicates that the expander emitted a negative transition cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that the search space was exhausted without settling a target.
	ErrNoPath = errors.New("dijkstra: target not reachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Expander enumerates the successors of state, calling emit once per
// transition with the successor and the non-negative cost of reaching it.
type Expander[K comparable] func(state K, emit func(next K, cost int64))

// Options configures the behavior of Search.
//
// Target      – optional goal predicate; nil means "settle everything reachable".
// ReturnPath  – if true, predecessors are recorded for Result.Path.
// MaxDistance – states farther than this are not explored. Default math.MaxInt64.
// Ctx         – cancellation; checked once per settled state.
type Options[K comparable] struct {
	Target      func(K) bool
	ReturnPath  bool
	MaxDistance int64
	Ctx         context.Context
}

// Option represents a functional option for configuring Search.
type Option[K comparable] func(*Options[K])

// WithTarget sets the goal predicate. Search returns as soon as the first
// state satisfying it is popped from the queue, which is then its optimal cost.
func WithTarget[K comparable](target func(K) bool) Option[K] {
	return func(o *Options[K]) {
		o.Target = target
	}
}

// WithReturnPath enables predecessor tracking so Result.Path can be used.
func WithReturnPath[K comparable]() Option[K] {
	return func(o *Options[K]) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// States whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance[K comparable](max int64) Option[K] {
	return func(o *Options[K]) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithContext allows cancellation of long searches.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		o.Ctx = ctx
	}
}

// DefaultOptions returns Options with no target, no path tracking,
// no distance cap and a background context.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		MaxDistance: math.MaxInt64,
		Ctx:         context.Background(),
	}
}

// Result holds the outcome of a Search.
//
// Dist maps every settled state to its optimal distance from the start.
// When a target was requested and reached, Found is true and Target/Distance
// describe it.
type Result[K comparable] struct {
	Dist     map[K]int64
	Found    bool
	Target   K
	Distance int64

	start K
	prev  map[K]K // nil unless ReturnPath
}

// Path rebuilds the start→target route. It returns nil if no target was found
// or WithReturnPath was not set.
func (r *Result[K]) Path() []K {
	if !r.Found || r.prev == nil {
		return nil
	}

	return r.PathTo(r.Target)
}

// PathTo rebuilds the start→to route for any settled state.
// It returns nil if to was not settled or WithReturnPath was not set.
func (r *Result[K]) PathTo(to K) []K {
	if r.prev == nil {
		return nil
	}
	if _, ok := r.Dist[to]; !ok {
		return nil
	}
	path := []K{to}
	for cur := to; cur != r.start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
