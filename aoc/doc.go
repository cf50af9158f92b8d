// Package aoc holds the small helpers every puzzle solver leans on.
//
// 🚀 What is aoc?
//
//	Floored integer arithmetic and puzzle input readers, shared by the
//	solvers in package days and the aoc command.
//
// ✨ Key features:
//   - Mod / DivMod: floored modulo and division over any signed integer,
//     so Mod(-5, 4) == 3 instead of Go's -1.
//   - ReadLines / Lines: non-empty input lines, eagerly or as a lazy
//     one-shot sequence.
//   - SplitBlocks: blank-line separated groups of lines.
//   - InputPath: the conventional <dir>/dayN.txt location of a puzzle input.
//
// ⚙️ Usage:
//
//	lines, err := aoc.ReadLines(aoc.InputPath("inputs", 6))
//	if err != nil {
//	    return err
//	}
//	r, _ := aoc.Mod(-5, 4) // 3
package aoc
