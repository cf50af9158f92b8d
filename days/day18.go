package days

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/counter"
)

type voxel struct{ x, y, z int }

func (v voxel) faces() [6]voxel {
	return [6]voxel{
		{v.x + 1, v.y, v.z}, {v.x - 1, v.y, v.z},
		{v.x, v.y + 1, v.z}, {v.x, v.y - 1, v.z},
		{v.x, v.y, v.z + 1}, {v.x, v.y, v.z - 1},
	}
}

func (v voxel) inside(lo, hi voxel) bool {
	return v.x >= lo.x && v.x <= hi.x &&
		v.y >= lo.y && v.y <= hi.y &&
		v.z >= lo.z && v.z <= hi.z
}

func parseVoxels(input []byte) ([]voxel, error) {
	ls := lines(input)
	out := make([]voxel, 0, len(ls))
	for i, l := range ls {
		parts := strings.Split(l, ",")
		if len(parts) != 3 {
			return nil, badInput(i, l)
		}
		var c [3]int
		for k, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, badInput(i, l)
			}
			c[k] = n
		}
		out = append(out, voxel{c[0], c[1], c[2]})
	}
	if len(out) == 0 {
		return nil, errors.Wrap(ErrBadInput, "no cubes")
	}

	return out, nil
}

// Day18 counts the exposed faces of the lava droplet, then only those
// reachable from outside: a flood fill of the air in a box one cell larger
// than the droplet marks what counts as outside.
func Day18(input []byte) (Answers, error) {
	cubes, err := parseVoxels(input)
	if err != nil {
		return Answers{}, err
	}
	lava := make(map[voxel]bool, len(cubes))
	lavaKeys := make(map[string]bool, len(cubes))
	var touching counter.Counter[int]
	lo, hi := cubes[0], cubes[0]
	for _, c := range cubes {
		lava[c] = true
		lavaKeys[counter.Key(c.x, c.y, c.z)] = true
		for _, n := range c.faces() {
			touching.Add(n.x, n.y, n.z)
		}
		lo = voxel{min(lo.x, c.x-1), min(lo.y, c.y-1), min(lo.z, c.z-1)}
		hi = voxel{max(hi.x, c.x+1), max(hi.y, c.y+1), max(hi.z, c.z+1)}
	}

	air, err := bfs.BFS(lo, func(v voxel) []voxel {
		var out []voxel
		for _, n := range v.faces() {
			if n.inside(lo, hi) && !lava[n] {
				out = append(out, n)
			}
		}
		return out
	})
	if err != nil {
		return Answers{}, errors.Wrap(err, "flood fill")
	}

	// every face of a cell next to the droplet is exposed unless the cell
	// is lava itself
	exposed := touching.Total(func(count int, key string) int {
		if lavaKeys[key] {
			return 0
		}
		return count
	})
	outside := 0
	for _, c := range cubes {
		for _, n := range c.faces() {
			if air.Reached(n) {
				outside++
			}
		}
	}

	return Answers{Part1: exposed, Part2: outside}, nil
}
