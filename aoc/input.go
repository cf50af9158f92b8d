package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/sequence"
)

// InputPath returns the conventional location of a day's puzzle input.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%d.txt", day))
}

// ReadLines returns the non-empty lines of the file at path.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}

	return Lines(bytes.NewReader(data)).ToSlice(), nil
}

// Lines returns the non-empty lines of r as a one-shot sequence. Lines are
// read as they are pulled; a read error ends the sequence early.
func Lines(r io.Reader) *sequence.Sequence[string] {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return sequence.FromFunc(func() (string, bool) {
		for sc.Scan() {
			if line := sc.Text(); line != "" {
				return line, true
			}
		}
		return "", false
	})
}

// SplitBlocks splits text into blank-line separated blocks, each a slice of
// its non-empty lines. Blocks with no lines are dropped.
func SplitBlocks(text string) [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks
}
