// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic loop order.
//
// Contract:
//   - Square matrix; +Inf means “no path”; diagonal must be 0 before calling.

package matrix

import (
	"fmt"
	"math"
)

// NewDistances returns an n×n distance matrix with 0 on the diagonal and
// +Inf everywhere else, ready for edges to be Set and FloydWarshall to run.
func NewDistances(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	inf := math.Inf(1)
	for i := range d.data {
		if i/n != i%n {
			d.data[i] = inf
		}
	}

	return d, nil
}

// FloydWarshall computes all-pairs shortest paths in-place on d.
//
// Loop order is fixed (k → i → j), and only strict improvements are
// written, so results are reproducible bit for bit.
// Time O(n³), extra space O(1).
func FloydWarshall(d *Dense) error {
	if d == nil {
		return ErrNilMatrix
	}
	if d.r != d.c {
		return fmt.Errorf("FloydWarshall: %dx%d: %w", d.r, d.c, ErrNonSquare)
	}

	n := d.r
	data := d.data
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
