package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/advent/dfs"
)

// ExampleTopologicalSort orders build steps so each comes before whatever
// depends on it.
func ExampleTopologicalSort() {
	needs := map[string][]string{
		"release": {"test", "docs"},
		"test":    {"compile"},
		"docs":    {"compile"},
		"compile": {"fetch"},
	}
	order, err := dfs.TopologicalSort([]string{"release"}, func(s string) []string { return needs[s] })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// dependencies first
	for i := len(order) - 1; i >= 0; i-- {
		fmt.Print(order[i], " ")
	}
	fmt.Println()
	// Output: fetch compile test docs release
}
