package automaton

import "github.com/bits-and-blooms/bitset"

// IndexSet is a set of state indices of one automaton, usable as a HashMap key. Two IndexSets are equal when
// they hold the same members, whatever their concrete type.
type IndexSet interface {
	Hashable

	// Members returns the indices in ascending order.
	Members() []int

	Size() int

	bitmap() *bitset.BitSet
}

var (
	_ IndexSet = &StateSet{}
	_ IndexSet = &FrozenStateSet{}
)

func hashBits(b *bitset.BitSet) uint64 {
	h := uint64(b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		h += mix(i)
	}
	return h
}

func membersOf(b *bitset.BitSet) []int {
	out := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// sameMembers compares by content; bitset.Equal also compares lengths, which differ between sets built
// in different orders.
func sameMembers(x, y *bitset.BitSet) bool {
	n := x.Count()
	return n == y.Count() && x.IntersectionCardinality(y) == n
}

func equalIndexSets(s IndexSet, other Hashable) bool {
	o, ok := other.(IndexSet)
	if !ok || o == nil {
		return false
	}
	if s.Size() != o.Size() || s.Hash() != o.Hash() {
		return false
	}
	return sameMembers(s.bitmap(), o.bitmap())
}
