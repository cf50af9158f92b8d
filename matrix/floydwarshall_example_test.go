// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/advent/matrix"
)

// ExampleFloydWarshall closes a three-node undirected triangle.
func ExampleFloydWarshall() {
	d, _ := matrix.NewDistances(3)
	for _, e := range [][3]float64{{0, 1, 4}, {1, 2, 1}, {0, 2, 2}} {
		i, j := int(e[0]), int(e[1])
		_ = d.Set(i, j, e[2])
		_ = d.Set(j, i, e[2])
	}
	_ = matrix.FloydWarshall(d)
	fmt.Print(d)
	// Output:
	// [0, 3, 2]
	// [3, 0, 1]
	// [2, 1, 0]
}
