package days

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/labelset"
	"github.com/katalvlaran/advent/matrix"
)

var valveRE = regexp.MustCompile(`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (.+)$`)

const startValve = "AA"

type valve struct {
	name  string
	flow  int
	index int
	exits []string
}

// cave is the valve graph compressed to travel times between valves.
type cave struct {
	valves map[string]*valve
	dist   *matrix.Dense
	useful []*valve // flow > 0
	labels *labelset.Interner
}

func parseCave(input []byte) (*cave, error) {
	c := &cave{valves: map[string]*valve{}, labels: labelset.NewInterner()}
	var order []*valve
	for i, l := range lines(input) {
		m := valveRE.FindStringSubmatch(l)
		if m == nil {
			return nil, badInput(i, l)
		}
		flow, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, badInput(i, l)
		}
		v := &valve{name: m[1], flow: flow, index: len(order), exits: strings.Split(m[3], ", ")}
		c.valves[v.name] = v
		order = append(order, v)
		if flow > 0 {
			c.useful = append(c.useful, v)
			c.labels.Bit(v.name)
		}
	}
	if _, ok := c.valves[startValve]; !ok {
		return nil, errors.Wrapf(ErrBadInput, "no valve %s", startValve)
	}

	dist, err := matrix.NewDistances(len(order))
	if err != nil {
		return nil, errors.Wrap(err, "distance matrix")
	}
	for _, v := range order {
		for _, e := range v.exits {
			to, ok := c.valves[e]
			if !ok {
				return nil, errors.Wrapf(ErrBadInput, "valve %s leads to unknown %s", v.name, e)
			}
			if err = dist.Set(v.index, to.index, 1); err != nil {
				return nil, errors.Wrap(err, "distance matrix")
			}
		}
	}
	if err = matrix.FloydWarshall(dist); err != nil {
		return nil, errors.Wrap(err, "distance matrix")
	}
	c.dist = dist

	return c, nil
}

// travel returns the minutes needed to walk from a to b.
func (c *cave) travel(a, b *valve) int {
	d, _ := c.dist.At(a.index, b.index)
	if math.IsInf(d, 1) {
		return math.MaxInt32
	}

	return int(d)
}

// outcome is the best pressure found for one set of opened valves.
type outcome struct {
	open     labelset.Set
	pressure int
}

// bestBySet explores every order of opening useful valves within minutes
// and keeps, per set of opened valves, the most pressure released.
func (c *cave) bestBySet(minutes int) map[string]outcome {
	best := map[string]outcome{}
	var search func(at *valve, left int, open labelset.Set, pressure int)
	search = func(at *valve, left int, open labelset.Set, pressure int) {
		if o, ok := best[open.Key()]; !ok || pressure > o.pressure {
			best[open.Key()] = outcome{open: open, pressure: pressure}
		}
		for _, v := range c.useful {
			if open.Has(v.name) {
				continue
			}
			// walk there, then one minute to open it
			rest := left - c.travel(at, v) - 1
			if rest <= 0 {
				continue
			}
			search(v, rest, open.Add(v.name), pressure+rest*v.flow)
		}
	}
	search(c.valves[startValve], minutes, c.labels.Empty(), 0)

	return best
}

// Day16 maximizes the pressure released in 30 minutes alone, then in 26
// minutes working alongside an elephant. The two workers never open the
// same valve, so part 2 pairs up disjoint valve sets.
func Day16(input []byte) (Answers, error) {
	c, err := parseCave(input)
	if err != nil {
		return Answers{}, err
	}

	part1 := 0
	for _, o := range c.bestBySet(30) {
		part1 = max(part1, o.pressure)
	}

	best := c.bestBySet(26)
	outcomes := make([]outcome, 0, len(best))
	for _, o := range best {
		outcomes = append(outcomes, o)
	}
	part2 := 0
	for i, a := range outcomes {
		for _, b := range outcomes[i:] {
			if a.pressure+b.pressure > part2 && a.open.Disjoint(b.open) {
				part2 = a.pressure + b.pressure
			}
		}
	}

	return Answers{Part1: part1, Part2: part2}, nil
}
