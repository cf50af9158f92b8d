package days

import (
	"regexp"
	"slices"
	"strconv"

	"github.com/katalvlaran/advent/sequence"
)

var sensorRE = regexp.MustCompile(`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)$`)

// Day15Params sets the row examined by part 1 and the side of the square
// searched by part 2. The puzzle uses 2000000 and 4000000; its worked
// example uses 10 and 20.
type Day15Params struct {
	Row int
	Box int
}

// sensor is a diamond: every point within Manhattan distance r of (x, y).
type sensor struct {
	x, y, r int
	beaconX int
	beaconY int
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func (s sensor) covers(x, y int) bool {
	return abs(s.x-x)+abs(s.y-y) <= s.r
}

func parseSensors(input []byte) ([]sensor, error) {
	ls := lines(input)
	out := make([]sensor, 0, len(ls))
	for i, l := range ls {
		m := sensorRE.FindStringSubmatch(l)
		if m == nil {
			return nil, badInput(i, l)
		}
		var v [4]int
		for k := range v {
			// the pattern guarantees digits; only overflow can fail
			n, err := strconv.Atoi(m[k+1])
			if err != nil {
				return nil, badInput(i, l)
			}
			v[k] = n
		}
		out = append(out, sensor{
			x: v[0], y: v[1], beaconX: v[2], beaconY: v[3],
			r: abs(v[0]-v[2]) + abs(v[1]-v[3]),
		})
	}

	return out, nil
}

// Solve implements Solver.
func (p Day15Params) Solve(input []byte) (Answers, error) {
	sensors, err := parseSensors(input)
	if err != nil {
		return Answers{}, err
	}

	return Answers{Part1: p.excluded(sensors), Part2: p.tuningFrequency(sensors)}, nil
}

// excluded counts the positions on Row where no beacon can be.
func (p Day15Params) excluded(sensors []sensor) int {
	var spans [][2]int
	for _, s := range sensors {
		if h := s.r - abs(s.y-p.Row); h >= 0 {
			spans = append(spans, [2]int{s.x - h, s.x + h})
		}
	}
	slices.SortFunc(spans, func(a, b [2]int) int { return a[0] - b[0] })

	var merged [][2]int
	for _, sp := range spans {
		if n := len(merged); n > 0 && sp[0] <= merged[n-1][1]+1 {
			merged[n-1][1] = max(merged[n-1][1], sp[1])
			continue
		}
		merged = append(merged, sp)
	}

	count := 0
	for _, m := range merged {
		count += m[1] - m[0] + 1
	}
	// beacons already on the row are not "no beacon" positions
	beacons := map[int]bool{}
	for _, s := range sensors {
		if s.beaconY == p.Row && !beacons[s.beaconX] {
			beacons[s.beaconX] = true
			for _, m := range merged {
				if s.beaconX >= m[0] && s.beaconX <= m[1] {
					count--
					break
				}
			}
		}
	}

	return count
}

// gapLines returns the intercepts of the lines running between two
// diamond edges that sit exactly one cell apart.
func gapLines(intercepts []int) *sequence.Sequence[int] {
	pairs := sequence.Combinations(sequence.FromSlice(intercepts), 2).
		Filter(func(b []int, _ int) bool { return abs(b[1]-b[0]) == 2 })

	return sequence.Dedup(sequence.Map(pairs, func(b []int, _ int) int {
		return min(b[0], b[1]) + 1
	}))
}

// tuningFrequency finds the single uncovered cell inside the Box square.
// It must lie on a +1 slope gap line and a -1 slope gap line, so only their
// intersections are tried. Returns -1 when there is none.
func (p Day15Params) tuningFrequency(sensors []sensor) int {
	var pos, neg []int
	for _, s := range sensors {
		// y = x + b and y = -x + b through the left and right corners
		pos = append(pos, s.y-(s.x-s.r), s.y-(s.x+s.r))
		neg = append(neg, s.y+(s.x-s.r), s.y+(s.x+s.r))
	}

	candidates := sequence.Product([]*sequence.Sequence[int]{gapLines(neg), gapLines(pos)}, 1).
		Filter(func(b []int, _ int) bool { return (b[0]-b[1])%2 == 0 })
	points := sequence.Map(candidates, func(b []int, _ int) [2]int {
		x := (b[0] - b[1]) / 2
		return [2]int{x, x + b[1]}
	})
	hit, ok := points.Find(func(pt [2]int, _ int) bool {
		x, y := pt[0], pt[1]
		if x < 0 || y < 0 || x > p.Box || y > p.Box {
			return false
		}
		for _, s := range sensors {
			if s.covers(x, y) {
				return false
			}
		}
		return true
	})
	if !ok {
		return -1
	}

	return hit[0]*4_000_000 + hit[1]
}
