package dijkstra_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/advent/dijkstra"
)

type E = dijkstra.Edge[string]

// weighted builds a neighbor function from directed, weighted edges.
func weighted(edges map[string][]E) func(string) []E {
	return func(n string) []E { return edges[n] }
}

// triangle: A→B(1), B→C(2), A→C(5).
var triangle = weighted(map[string][]E{
	"A": {{To: "B", Weight: 1}, {To: "C", Weight: 5}},
	"B": {{To: "C", Weight: 2}},
})

func TestDijkstra_Validation(t *testing.T) {
	if _, err := dijkstra.Dijkstra(triangle); err != dijkstra.ErrNoSource {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
	if _, err := dijkstra.Dijkstra[string](nil, dijkstra.Source("A")); err != dijkstra.ErrNilNeighbors {
		t.Fatalf("expected ErrNilNeighbors, got %v", err)
	}
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := weighted(map[string][]E{"A": {{To: "B", Weight: -5}}})
	_, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("expected ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstra_Triangle(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int64{"A": 0, "B": 1, "C": 3}
	if !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v, want %v", res.Dist, want)
	}
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(path, []string{"A", "B", "C"}) {
		t.Errorf("PathTo(C) = %v", path)
	}
	if got := res.Settled().ToSlice(); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("Settled = %v", got)
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle, dijkstra.Source("B"))
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := res.Distance("A"); ok || d != dijkstra.Unreachable {
		t.Errorf("Distance(A) = %d, %v", d, ok)
	}
	if _, err := res.PathTo("A"); err != dijkstra.ErrNoPath {
		t.Errorf("expected ErrNoPath, got %v", err)
	}
}

func TestDijkstra_MultiSource(t *testing.T) {
	// a line 0-1-2-3-4-5-6 with sources at both ends
	line := func(n int) []dijkstra.Edge[int] {
		var out []dijkstra.Edge[int]
		if n > 0 {
			out = append(out, dijkstra.Edge[int]{To: n - 1, Weight: 1})
		}
		if n < 6 {
			out = append(out, dijkstra.Edge[int]{To: n + 1, Weight: 1})
		}
		return out
	}
	res, err := dijkstra.Dijkstra(line, dijkstra.Source(0, 6), dijkstra.Source(6))
	if err != nil {
		t.Fatal(err)
	}
	want := map[int]int64{0: 0, 1: 1, 2: 2, 3: 3, 4: 2, 5: 1, 6: 0}
	if !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v, want %v", res.Dist, want)
	}
	if path, _ := res.PathTo(5); !reflect.DeepEqual(path, []int{6, 5}) {
		t.Errorf("PathTo(5) = %v", path)
	}
}

func TestDijkstra_TargetStopsEarly(t *testing.T) {
	// the naturals, each one step from the next
	calls := 0
	next := func(n int) []dijkstra.Edge[int] {
		calls++
		return []dijkstra.Edge[int]{{To: n + 1, Weight: 1}}
	}
	res, err := dijkstra.Dijkstra(next, dijkstra.Source(0), dijkstra.WithTarget(10))
	if err != nil {
		t.Fatal(err)
	}
	if d, _ := res.Distance(10); d != 10 {
		t.Errorf("Distance(10) = %d", d)
	}
	if calls != 10 {
		t.Errorf("expanded %d nodes, want 10", calls)
	}
}

func TestDijkstra_MaxDistance(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle, dijkstra.Source("A"), dijkstra.WithMaxDistance[string](2))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Distance("C"); ok {
		t.Error("C is 3 away and must not be reached")
	}
	if d, ok := res.Distance("B"); !ok || d != 1 {
		t.Errorf("Distance(B) = %d, %v", d, ok)
	}

	defer func() {
		if r := recover(); r != dijkstra.ErrBadMaxDistance {
			t.Errorf("expected panic with ErrBadMaxDistance, got %v", r)
		}
	}()
	dijkstra.WithMaxDistance[string](-1)
}

func TestDijkstra_ZeroWeightsAndSelfLoops(t *testing.T) {
	g := weighted(map[string][]E{
		"A": {{To: "A", Weight: 0}, {To: "B", Weight: 0}},
		"B": {{To: "C", Weight: 4}, {To: "A", Weight: 0}},
	})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int64{"A": 0, "B": 0, "C": 4}
	if !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v, want %v", res.Dist, want)
	}
	if _, ok := res.Prev["A"]; ok {
		t.Error("a source has no predecessor")
	}
}
