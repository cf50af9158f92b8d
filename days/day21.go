package days

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/dfs"
)

var monkeyRE = regexp.MustCompile(`^(\w+): (?:(-?\d+)|(\w+) ([-+*/]) (\w+))$`)

const (
	rootMonkey  = "root"
	humanMonkey = "humn"
)

// job is either a number or an operation on two other monkeys' numbers.
type job struct {
	number      int64
	left, right string
	op          byte
}

func (j job) isNumber() bool { return j.op == 0 }

// ops and their inverses: solveLeft finds a from a op b = out, solveRight
// finds b.
var (
	ops = map[byte]func(a, b int64) int64{
		'+': func(a, b int64) int64 { return a + b },
		'-': func(a, b int64) int64 { return a - b },
		'*': func(a, b int64) int64 { return a * b },
		'/': func(a, b int64) int64 { return a / b },
	}
	solveLeft = map[byte]func(out, b int64) int64{
		'+': func(out, b int64) int64 { return out - b },
		'-': func(out, b int64) int64 { return out + b },
		'*': func(out, b int64) int64 { return out / b },
		'/': func(out, b int64) int64 { return out * b },
	}
	solveRight = map[byte]func(out, a int64) int64{
		'+': func(out, a int64) int64 { return out - a },
		'-': func(out, a int64) int64 { return a - out },
		'*': func(out, a int64) int64 { return out / a },
		'/': func(out, a int64) int64 { return a / out },
	}
)

type troop map[string]job

func parseTroop(input []byte) (troop, error) {
	t := troop{}
	for i, l := range lines(input) {
		m := monkeyRE.FindStringSubmatch(l)
		if m == nil {
			return nil, badInput(i, l)
		}
		if m[2] != "" {
			n, err := strconv.ParseInt(m[2], 10, 64)
			if err != nil {
				return nil, badInput(i, l)
			}
			t[m[1]] = job{number: n}
			continue
		}
		t[m[1]] = job{left: m[3], op: m[4][0], right: m[5]}
	}
	for _, name := range []string{rootMonkey, humanMonkey} {
		if _, ok := t[name]; !ok {
			return nil, errors.Wrapf(ErrBadInput, "no monkey %s", name)
		}
	}

	return t, nil
}

// evaluate computes every monkey's number, dependencies first. It also
// reports which monkeys depend on the human.
func (t troop) evaluate() (map[string]int64, map[string]bool, error) {
	var missing string
	order, err := dfs.TopologicalSort([]string{rootMonkey}, func(name string) []string {
		j, ok := t[name]
		if !ok {
			missing = name
			return nil
		}
		if j.isNumber() {
			return nil
		}
		return []string{j.left, j.right}
	})
	if err != nil {
		return nil, nil, errors.Wrapf(ErrBadInput, "%v", err)
	}
	if missing != "" {
		return nil, nil, errors.Wrapf(ErrBadInput, "no monkey %s", missing)
	}

	values := make(map[string]int64, len(order))
	human := make(map[string]bool, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		name := order[i]
		j := t[name]
		if j.isNumber() {
			values[name] = j.number
			human[name] = name == humanMonkey
			continue
		}
		if j.op == '/' && values[j.right] == 0 {
			return nil, nil, errors.Wrapf(ErrBadInput, "monkey %s divides by zero", name)
		}
		values[name] = ops[j.op](values[j.left], values[j.right])
		human[name] = human[j.left] || human[j.right]
	}

	return values, human, nil
}

// shout finds the number the human must yell so that root's two operands
// are equal, walking down the one branch that depends on the human.
func (t troop) shout(values map[string]int64, human map[string]bool) (int64, error) {
	root := t[rootMonkey]
	if root.isNumber() {
		return 0, errors.Wrap(ErrBadInput, "root has no operands")
	}
	name, want := root.left, values[root.right]
	if !human[root.left] {
		name, want = root.right, values[root.left]
	}
	for name != humanMonkey {
		j := t[name]
		if !human[name] || j.isNumber() {
			return 0, errors.Wrap(ErrBadInput, "root does not depend on humn")
		}
		switch {
		case human[j.left] && human[j.right]:
			return 0, errors.Wrapf(ErrBadInput, "humn appears on both sides of %s", name)
		case human[j.left]:
			if j.op == '*' && values[j.right] == 0 {
				return 0, errors.Wrapf(ErrBadInput, "monkey %s multiplies humn by zero", name)
			}
			want = solveLeft[j.op](want, values[j.right])
			name = j.left
		default:
			if (j.op == '*' && values[j.left] == 0) || (j.op == '/' && want == 0) {
				return 0, errors.Wrapf(ErrBadInput, "monkey %s has no unique solution", name)
			}
			want = solveRight[j.op](want, values[j.left])
			name = j.right
		}
	}

	return want, nil
}

// Day21 evaluates the monkeys' expression tree, then solves it for the
// human's number that makes root's operands equal.
func Day21(input []byte) (Answers, error) {
	t, err := parseTroop(input)
	if err != nil {
		return Answers{}, err
	}
	values, human, err := t.evaluate()
	if err != nil {
		return Answers{}, err
	}
	part2, err := t.shout(values, human)
	if err != nil {
		return Answers{}, err
	}

	return Answers{Part1: int(values[rootMonkey]), Part2: int(part2)}, nil
}
