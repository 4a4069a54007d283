// Command aoc runs the Advent of Code 2021 solutions.
//
// Examples:
//
//	aoc list
//	aoc run 15
//	aoc run 6 1 --iterations 18
//	aoc run 13 2 -i inputs/day13.txt --render
//	aoc run 23 --json --no-cache
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	_ "github.com/katalvlaran/aoc2021/days/all"
	"github.com/katalvlaran/aoc2021/logger"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		failureLogger().Error().Err(err).Msg("aoc failed")
		os.Exit(1)
	}
}

// failureLogger returns the configured logger, or a stderr console logger
// when setup failed before logging was initialised.
func failureLogger() *zerolog.Logger {
	if logger.Initialized() {
		return &logger.Logger
	}
	l := logger.New(zerolog.ConsoleWriter{Out: os.Stderr})
	return &l
}
