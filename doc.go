// Package advent collects Advent of Code solutions built on a lazy sequence
// library.
//
// Layout:
//
//	sequence/     lazy Sequence and NumberSequence combinators
//	aoc/          input reading, CLI params, floored modulo
//	counter/      keyed counters over composite keys
//	labelset/     immutable label sets backed by bit sets
//	bfs/          breadth-first search over implicit graphs
//	dijkstra/     shortest paths over implicit weighted graphs
//	dfs/          topological order with cycle reporting
//	gridgraph/    rectangular grids as implicit graphs
//	matrix/       dense matrices and Floyd–Warshall
//	days/         one solver per puzzle day
//	cmd/aoc/      the command-line runner
//	internal/log/ zap logger shared by the commands
//
// Quick start:
//
//	go run ./cmd/aoc run 1 inputs/day1.txt
//	go run ./cmd/aoc list --format table
package advent
