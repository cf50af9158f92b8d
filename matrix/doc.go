// Package matrix provides a small row-major float64 matrix and the
// Floyd–Warshall all-pairs shortest path closure over it.
//
// Distance matrices use +Inf for “no path” and 0 on the diagonal;
// NewDistances builds one, callers Set the direct edge weights, and
// FloydWarshall relaxes it in place.
//
//	d, _ := matrix.NewDistances(3)
//	_ = d.Set(0, 1, 1)
//	_ = d.Set(1, 2, 1)
//	_ = matrix.FloydWarshall(d)
//	v, _ := d.At(0, 2) // 2
package matrix
