package labelset

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/advent/sequence"
)

// Interner owns the label to bit position table.
type Interner struct {
	bits  map[string]uint
	names []string
}

// NewInterner returns an empty table.
func NewInterner() *Interner {
	return &Interner{bits: make(map[string]uint)}
}

// Bit returns label's bit position, assigning the next free one on first
// use.
func (in *Interner) Bit(label string) uint {
	if b, ok := in.bits[label]; ok {
		return b
	}
	b := uint(len(in.names))
	in.bits[label] = b
	in.names = append(in.names, label)

	return b
}

// Len returns the number of labels interned so far.
func (in *Interner) Len() int {
	return len(in.names)
}

// Name returns the label at bit b.
func (in *Interner) Name(b uint) (string, bool) {
	if b >= uint(len(in.names)) {
		return "", false
	}

	return in.names[b], true
}

// Empty returns the empty Set over in.
func (in *Interner) Empty() Set {
	return Set{in: in, bits: bitset.New(0)}
}

// Of returns the Set holding labels.
func (in *Interner) Of(labels ...string) Set {
	bs := bitset.New(0)
	for _, l := range labels {
		bs.Set(in.Bit(l))
	}

	return Set{in: in, bits: bs}
}

// Set is an immutable set of labels. Use Interner.Empty or Interner.Of to
// get one.
type Set struct {
	in   *Interner
	bits *bitset.BitSet
}

func (s Set) with(fn func(bs *bitset.BitSet)) Set {
	bs := s.bits.Clone()
	fn(bs)

	return Set{in: s.in, bits: bs}
}

// Add returns s with label added.
func (s Set) Add(label string) Set {
	b := s.in.Bit(label)

	return s.with(func(bs *bitset.BitSet) { bs.Set(b) })
}

// Delete returns s without label.
func (s Set) Delete(label string) Set {
	b, ok := s.in.bits[label]
	if !ok {
		return s
	}

	return s.with(func(bs *bitset.BitSet) { bs.Clear(b) })
}

// Union returns the labels in s or o.
func (s Set) Union(o Set) Set {
	return Set{in: s.in, bits: s.bits.Union(o.bits)}
}

// Has reports whether label is in s. Unknown labels are not interned.
func (s Set) Has(label string) bool {
	b, ok := s.in.bits[label]

	return ok && s.bits.Test(b)
}

// Size returns the number of labels in s.
func (s Set) Size() int {
	return int(s.bits.Count())
}

// Disjoint reports whether s and o share no label.
func (s Set) Disjoint(o Set) bool {
	return s.bits.IntersectionCardinality(o.bits) == 0
}

// Equal reports whether s and o hold the same labels.
func (s Set) Equal(o Set) bool {
	return s.Key() == o.Key()
}

// Key returns a string that identifies the members of s, usable as a map
// key.
func (s Set) Key() string {
	return s.bits.String()
}

// String returns the bits of s as a decimal integer, bit 0 being the first
// interned label.
func (s Set) String() string {
	n := new(big.Int)
	for b, ok := s.bits.NextSet(0); ok; b, ok = s.bits.NextSet(b + 1) {
		n.SetBit(n, int(b), 1)
	}

	return n.String()
}

// Labels yields the members of s in interning order.
func (s Set) Labels() *sequence.Sequence[string] {
	return sequence.New[string](s)
}

// Iterator implements sequence.Iterable.
func (s Set) Iterator() sequence.Iterator[string] {
	var (
		next    uint
		stopped bool
	)

	return sequence.IteratorFunc[string](func() (string, bool) {
		if stopped {
			return "", false
		}
		b, ok := s.bits.NextSet(next)
		if !ok {
			stopped = true
			return "", false
		}
		next = b + 1
		return s.in.names[b], true
	})
}

// Format implements fmt.Formatter: %d prints String, every other verb the
// comma-joined labels.
func (s Set) Format(f fmt.State, verb rune) {
	if verb == 'd' {
		fmt.Fprint(f, s.String())
		return
	}
	fmt.Fprint(f, strings.Join(s.Labels().ToSlice(), ","))
}
