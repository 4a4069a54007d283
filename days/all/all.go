// Package all links every day's solutions into the puzzle registry.
package all

import (
	_ "github.com/katalvlaran/aoc2021/days/day01"
	_ "github.com/katalvlaran/aoc2021/days/day02"
	_ "github.com/katalvlaran/aoc2021/days/day03"
	_ "github.com/katalvlaran/aoc2021/days/day04"
	_ "github.com/katalvlaran/aoc2021/days/day05"
	_ "github.com/katalvlaran/aoc2021/days/day06"
	_ "github.com/katalvlaran/aoc2021/days/day07"
	_ "github.com/katalvlaran/aoc2021/days/day08"
	_ "github.com/katalvlaran/aoc2021/days/day09"
	_ "github.com/katalvlaran/aoc2021/days/day10"
	_ "github.com/katalvlaran/aoc2021/days/day11"
	_ "github.com/katalvlaran/aoc2021/days/day12"
	_ "github.com/katalvlaran/aoc2021/days/day13"
	_ "github.com/katalvlaran/aoc2021/days/day14"
	_ "github.com/katalvlaran/aoc2021/days/day15"
	_ "github.com/katalvlaran/aoc2021/days/day16"
	_ "github.com/katalvlaran/aoc2021/days/day17"
	_ "github.com/katalvlaran/aoc2021/days/day18"
	_ "github.com/katalvlaran/aoc2021/days/day19"
	_ "github.com/katalvlaran/aoc2021/days/day20"
	_ "github.com/katalvlaran/aoc2021/days/day21"
	_ "github.com/katalvlaran/aoc2021/days/day22"
	_ "github.com/katalvlaran/aoc2021/days/day23"
	_ "github.com/katalvlaran/aoc2021/days/day24"
	_ "github.com/katalvlaran/aoc2021/days/day25"
)
