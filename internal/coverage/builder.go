package coverage

import "github.com/bits-and-blooms/bitset"

// Builder fills a vector row by row. It is used while evaluating predicates
// so that the resulting Vector stays immutable once built.
type Builder struct {
	bits *bitset.BitSet
	n    int
}

func NewBuilder(n int) *Builder {
	return &Builder{bits: bitset.New(uint(n)), n: n}
}

func (b *Builder) Set(i int) {
	if i >= 0 && i < b.n {
		b.bits.Set(uint(i))
	}
}

// Vector returns the built vector. The builder must not be used afterwards.
func (b *Builder) Vector() Vector {
	v := Vector{bits: b.bits, n: b.n}
	b.bits = nil
	return v
}

// OrAll folds Or over vs. It returns an all-false vector of length n when vs
// is empty.
func OrAll(n int, vs ...Vector) (Vector, error) {
	acc := New(n)
	for _, v := range vs {
		var err error
		if acc, err = acc.Or(v); err != nil {
			return Vector{}, err
		}
	}
	return acc, nil
}
