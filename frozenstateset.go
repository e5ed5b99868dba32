package automaton

import "github.com/bits-and-blooms/bitset"

// FrozenStateSet is an immutable set of state indices with a precomputed hash. It keys subsets in the
// determinizer and blocks in the minimizer.
type FrozenStateSet struct {
	bits     *bitset.BitSet
	values   []int
	hashCode uint64
}

// NewFrozenStateSet takes ownership of bits; the caller must not modify it afterwards.
func NewFrozenStateSet(bits *bitset.BitSet) *FrozenStateSet {
	return &FrozenStateSet{
		bits:     bits,
		values:   membersOf(bits),
		hashCode: hashBits(bits),
	}
}

// FrozenStateSetOf builds a frozen set from explicit indices.
func FrozenStateSetOf(states ...int) *FrozenStateSet {
	b := bitset.New(0)
	for _, s := range states {
		b.Set(uint(s))
	}
	return NewFrozenStateSet(b)
}

func (f *FrozenStateSet) Hash() uint64 {
	if f == nil {
		return 0
	}
	return f.hashCode
}

func (f *FrozenStateSet) Equals(other Hashable) bool {
	return equalIndexSets(f, other)
}

func (f *FrozenStateSet) Members() []int {
	if f == nil {
		return nil
	}
	return f.values
}

func (f *FrozenStateSet) Size() int {
	if f == nil {
		return 0
	}
	return len(f.values)
}

// Contains reports whether state is a member.
func (f *FrozenStateSet) Contains(state int) bool {
	return f.bitmap().Test(uint(state))
}

// Intersects reports whether the set shares at least one member with b.
func (f *FrozenStateSet) Intersects(b *bitset.BitSet) bool {
	return f.bitmap().IntersectionCardinality(b) > 0
}

func (f *FrozenStateSet) bitmap() *bitset.BitSet {
	if f == nil {
		return bitset.New(0)
	}
	return f.bits
}
