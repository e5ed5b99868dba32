package automaton

import "github.com/bits-and-blooms/bitset"

// StateSet is a mutable set of state indices, used to accumulate the targets of a subset during
// determinization. Freeze it before using it as a long lived key.
type StateSet struct {
	bits        *bitset.BitSet
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet() *StateSet {
	return &StateSet{bits: bitset.New(0)}
}

func (s *StateSet) Hash() uint64 {
	if s == nil {
		return 0
	}
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = hashBits(s.bits)
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	return equalIndexSets(s, other)
}

func (s *StateSet) Members() []int {
	return membersOf(s.bitmap())
}

func (s *StateSet) Size() int {
	if s == nil {
		return 0
	}
	return int(s.bits.Count())
}

func (s *StateSet) bitmap() *bitset.BitSet {
	if s == nil {
		return bitset.New(0)
	}
	return s.bits
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
}

// Add inserts a single state index.
func (s *StateSet) Add(state int) {
	if !s.bits.Test(uint(state)) {
		s.bits.Set(uint(state))
		s.keyChanged()
	}
}

// Union inserts every index set in b. A nil b is a no-op.
func (s *StateSet) Union(b *bitset.BitSet) {
	if b == nil {
		return
	}
	s.bits.InPlaceUnion(b)
	s.keyChanged()
}

// Contains reports whether state is a member.
func (s *StateSet) Contains(state int) bool {
	return s.bits.Test(uint(state))
}

// Intersects reports whether the set shares at least one member with b.
func (s *StateSet) Intersects(b *bitset.BitSet) bool {
	return s.bits.IntersectionCardinality(b) > 0
}

// Freeze returns an immutable copy.
func (s *StateSet) Freeze() *FrozenStateSet {
	return NewFrozenStateSet(s.bits.Clone())
}
