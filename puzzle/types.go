// SPDX-License-Identifier: MIT

// Package puzzle defines the solution registry shared by every day package
// and the command line.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Days and parts accepted by Register.
const (
	FirstDay = 1
	LastDay  = 25
	MaxPart  = 2
)

// Sentinel errors for registry lookups.
var (
	// ErrNotRegistered indicates that no solution exists for a day/part pair.
	ErrNotRegistered = errors.New("puzzle: solution not registered")

	// ErrBadKey indicates a day or part outside the accepted range.
	ErrBadKey = errors.New("puzzle: day or part out of range")
)

// Answer is whatever a solution produces; it is printed with fmt.Sprint.
type Answer any

// Solution solves one part of one day for the given raw input.
type Solution func(ctx context.Context, input []byte, opts Options) (Answer, error)

// Key identifies a registered solution.
type Key struct {
	Day  int
	Part int
}

// String renders the key as "dayNN/partN".
func (k Key) String() string { return fmt.Sprintf("day%02d/part%d", k.Day, k.Part) }

// Options carries the optional scalar parameters of a run.
//
// Iterations – overrides a day's built-in step count when > 0.
// Workers    – parallelism for days that fan out; <= 0 means GOMAXPROCS.
// Render     – days that can draw their result return the drawing instead.
type Options struct {
	Iterations int
	Workers    int
	Render     bool
}

// Default returns Options with the day-defined iteration count and one worker
// per available CPU.
func Default() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// StepsOr returns o.Iterations when set, otherwise def.
func (o Options) StepsOr(def int) int {
	if o.Iterations > 0 {
		return o.Iterations
	}

	return def
}

// WorkerCount returns the effective worker count, never below 1.
func (o Options) WorkerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return max(1, runtime.GOMAXPROCS(0))
}
