// Package counter tallies occurrences of things described by one or more
// values.
//
// A thing is keyed by the comma-joined fmt rendering of its values, so
// c.Add(1, 2) and c.Add("1", "2") count the same thing.
package counter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/advent/sequence"
)

// Entry is one counted thing and its total.
type Entry = sequence.Entry[string, int]

// Filter maps an entry to its contribution to Total.
type Filter func(count int, key string) int

// CountAll makes Total add up every count.
func CountAll(count int, _ string) int {
	return count
}

// CountIf makes Total count the entries for which pred holds.
func CountIf(pred func(count int, key string) bool) Filter {
	return func(count int, key string) int {
		if pred(count, key) {
			return 1
		}
		return 0
	}
}

// Counter counts things. The zero value is ready to use.
type Counter[T any] struct {
	points map[string]int
}

// New returns an empty Counter.
func New[T any]() *Counter[T] {
	return &Counter[T]{points: make(map[string]int)}
}

// Key renders vals the way Counter keys them.
func Key[T any](vals ...T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, ",")
}

// Add counts the thing described by vals once and returns its new total.
func (c *Counter[T]) Add(vals ...T) int {
	return c.Sum(1, vals...)
}

// Sum adds count to the thing described by vals and returns its new total.
func (c *Counter[T]) Sum(count int, vals ...T) int {
	if c.points == nil {
		c.points = make(map[string]int)
	}
	k := Key(vals...)
	c.points[k] += count

	return c.points[k]
}

// Get returns the total for the thing described by vals.
func (c *Counter[T]) Get(vals ...T) int {
	return c.points[Key(vals...)]
}

// Total folds every entry through fn. A nil fn counts distinct things.
func (c *Counter[T]) Total(fn Filter) int {
	if fn == nil {
		fn = CountIf(func(int, string) bool { return true })
	}

	return sequence.Fold(c.Entries(), 0, func(acc int, e Entry, _ int) int {
		return acc + fn(e.Value, e.Key)
	})
}

// Max returns the entry with the largest count. Ties go to the smallest
// key. ok is false when nothing has been counted.
func (c *Counter[T]) Max() (key string, count int, ok bool) {
	for e := range c.Entries().All() {
		if !ok || e.Value > count {
			key, count, ok = e.Key, e.Value, true
		}
	}

	return key, count, ok
}

// Size returns the number of distinct things counted.
func (c *Counter[T]) Size() int {
	return len(c.points)
}

// Entries returns the counted things sorted by key, as a restartable
// sequence that reflects later additions.
func (c *Counter[T]) Entries() *sequence.Sequence[Entry] {
	return sequence.New[Entry](c)
}

// Iterator implements sequence.Iterable. Keys are snapshotted when it is
// called.
func (c *Counter[T]) Iterator() sequence.Iterator[Entry] {
	return sequence.Map(sequence.FromSlice(c.sortedKeys()), func(k string, _ int) Entry {
		return Entry{Key: k, Value: c.points[k]}
	}).Iterator()
}

func (c *Counter[T]) sortedKeys() []string {
	keys := make([]string, 0, len(c.points))
	for k := range c.points {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
