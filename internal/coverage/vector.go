// Package coverage holds fixed-length boolean vectors over dataset rows.
package coverage

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/DjordjeVuckovic/sublist-eval/internal/apperr"
)

// Vector is an immutable bit-packed row membership vector. Its length is
// fixed at construction and every binary operation requires equal lengths.
type Vector struct {
	bits *bitset.BitSet
	n    int
}

// New returns an all-false vector of length n.
func New(n int) Vector {
	return Vector{bits: bitset.New(uint(n)), n: n}
}

// Full returns an all-true vector of length n.
func Full(n int) Vector {
	return Vector{bits: bitset.New(uint(n)).Complement(), n: n}
}

func FromBools(values []bool) Vector {
	b := bitset.New(uint(len(values)))
	for i, v := range values {
		if v {
			b.Set(uint(i))
		}
	}
	return Vector{bits: b, n: len(values)}
}

// FromIndices builds a vector of length n with the given rows set.
// Indices outside [0, n) are ignored.
func FromIndices(n int, indices ...int) Vector {
	b := bitset.New(uint(n))
	for _, i := range indices {
		if i >= 0 && i < n {
			b.Set(uint(i))
		}
	}
	return Vector{bits: b, n: n}
}

func (v Vector) Len() int {
	return v.n
}

func (v Vector) Test(i int) bool {
	if i < 0 || i >= v.n || v.bits == nil {
		return false
	}
	return v.bits.Test(uint(i))
}

// Count returns the number of true entries.
func (v Vector) Count() int {
	if v.bits == nil {
		return 0
	}
	return int(v.bits.Count())
}

func (v Vector) And(o Vector) (Vector, error) {
	if err := v.sameLen(o); err != nil {
		return Vector{}, err
	}
	return Vector{bits: v.set().Intersection(o.set()), n: v.n}, nil
}

func (v Vector) Or(o Vector) (Vector, error) {
	if err := v.sameLen(o); err != nil {
		return Vector{}, err
	}
	return Vector{bits: v.set().Union(o.set()), n: v.n}, nil
}

func (v Vector) Not() Vector {
	return Vector{bits: v.set().Complement(), n: v.n}
}

// None reports whether no entry is true.
func (v Vector) None() bool {
	return v.Count() == 0
}

// All reports whether every entry is true.
func (v Vector) All() bool {
	return v.Count() == v.n
}

func (v Vector) Equal(o Vector) bool {
	if v.n != o.n {
		return false
	}
	return v.set().Equal(o.set())
}

// Indices returns the positions of the true entries in ascending order.
func (v Vector) Indices() []int {
	out := make([]int, 0, v.Count())
	b := v.set()
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Bools expands the vector into a plain slice.
func (v Vector) Bools() []bool {
	out := make([]bool, v.n)
	for _, i := range v.Indices() {
		out[i] = true
	}
	return out
}

func (v Vector) sameLen(o Vector) error {
	if v.n != o.n {
		return apperr.NewLengthMismatch(v.n, o.n)
	}
	return nil
}

func (v Vector) set() *bitset.BitSet {
	if v.bits == nil {
		return bitset.New(uint(v.n))
	}
	return v.bits
}
