// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"
	"sort"
	"sync"
)

var (
	mu        sync.RWMutex
	solutions = map[Key]Solution{}
)

// Register adds fn under day/part. It is meant to be called from init and
// panics on a nil solution, an out-of-range key or a duplicate registration.
func Register(day, part int, fn Solution) {
	k := Key{Day: day, Part: part}
	if !valid(k) {
		panic(fmt.Sprintf("%v: %s", ErrBadKey, k))
	}
	if fn == nil {
		panic(fmt.Sprintf("puzzle: nil solution for %s", k))
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := solutions[k]; dup {
		panic(fmt.Sprintf("puzzle: %s registered twice", k))
	}
	solutions[k] = fn
}

// Lookup returns the solution for day/part.
func Lookup(day, part int) (Solution, error) {
	k := Key{Day: day, Part: part}
	if !valid(k) {
		return nil, fmt.Errorf("%w: %s", ErrBadKey, k)
	}
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := solutions[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, k)
	}

	return fn, nil
}

// Parts returns the registered parts of day in ascending order.
func Parts(day int) []int {
	mu.RLock()
	defer mu.RUnlock()
	var parts []int
	for k := range solutions {
		if k.Day == day {
			parts = append(parts, k.Part)
		}
	}
	sort.Ints(parts)

	return parts
}

// All returns every registered key ordered by day, then part.
func All() []Key {
	mu.RLock()
	defer mu.RUnlock()
	keys := make([]Key, 0, len(solutions))
	for k := range solutions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Day != keys[j].Day {
			return keys[i].Day < keys[j].Day
		}
		return keys[i].Part < keys[j].Part
	})

	return keys
}

func valid(k Key) bool {
	return k.Day >= FirstDay && k.Day <= LastDay && k.Part >= 1 && k.Part <= MaxPart
}

// unregister removes a key; used by tests only.
func unregister(k Key) {
	mu.Lock()
	defer mu.Unlock()
	delete(solutions, k)
}
