// Package days holds the puzzle solvers and the registry the aoc command
// dispatches through.
//
// 🚀 What is days?
//
//	Every solver takes the raw puzzle input and returns the answers to both
//	parts. Solvers are thin: parsing plus a few lines of glue around the
//	sequence combinators and the search and matrix packages.
//
// ✨ Solvers:
//   - Day 1:  calorie groups (Sum, Take over a descending sort).
//   - Day 3:  rucksack priorities (Chunks of three, bit set intersection).
//   - Day 6:  start-of-packet markers (Windows + distinctness).
//   - Day 12: hill climbing (gridgraph + multi-source dijkstra).
//   - Day 15: beacon exclusion zones (interval merge; Combinations, Dedup
//     and Product over diamond edge lines).
//   - Day 16: valve pressure (Floyd–Warshall + labelset search states).
//   - Day 18: lava droplet surface (counter, then a bfs flood fill).
//   - Day 20: grove coordinate mixing (floored Mod around the circle).
//   - Day 21: monkey math (dfs topological order, then solving for humn).
//   - Day 25: SNAFU numbers (balanced base 5 via DivMod).
//
// ⚙️ Usage:
//
//	solve, ok := days.Lookup(6)
//	if !ok { ... }
//	ans, err := solve(input)
package days
