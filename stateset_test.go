package automaton

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
)

func TestStateSet_AddAndUnion(t *testing.T) {
	s := NewStateSet()
	s.Add(3)
	s.Add(1)
	s.Add(3)
	s.Union(bitset.New(0).Set(7).Set(1))
	s.Union(nil)

	assert.Equal(t, []int{1, 3, 7}, s.Members())
	assert.Equal(t, 3, s.Size())
	assert.True(t, s.Contains(7))
	assert.False(t, s.Contains(2))
	assert.True(t, s.Intersects(bitset.New(0).Set(3)))
	assert.False(t, s.Intersects(bitset.New(0).Set(4)))
}

func TestStateSet_HashTracksChanges(t *testing.T) {
	s := NewStateSet()
	s.Add(1)
	h1 := s.Hash()
	s.Add(2)
	h2 := s.Hash()

	assert.NotEqual(t, h1, h2)
	assert.Equal(t, FrozenStateSetOf(1, 2).Hash(), h2)
}

func TestStateSet_Freeze(t *testing.T) {
	s := NewStateSet()
	s.Add(2)
	s.Add(5)
	f := s.Freeze()
	s.Add(9)

	assert.Equal(t, []int{2, 5}, f.Members())
	assert.True(t, f.Contains(5))
	assert.False(t, f.Contains(9))
}

func TestFrozenStateSet_Equals(t *testing.T) {
	tests := []struct {
		name     string
		f        *FrozenStateSet
		other    Hashable
		expected bool
	}{
		{
			name:     "both nil",
			f:        nil,
			other:    (*FrozenStateSet)(nil),
			expected: true,
		},
		{
			name:     "f not nil, other nil",
			f:        FrozenStateSetOf(1),
			other:    nil,
			expected: false,
		},
		{
			name:     "different key type",
			f:        FrozenStateSetOf(1, 2, 3),
			other:    TestKey{1, "a"},
			expected: false,
		},
		{
			name:     "values differ",
			f:        FrozenStateSetOf(1, 2, 3),
			other:    FrozenStateSetOf(1, 2),
			expected: false,
		},
		{
			name:     "same size, different members",
			f:        FrozenStateSetOf(1, 2),
			other:    FrozenStateSetOf(1, 3),
			expected: false,
		},
		{
			name:     "all members equal",
			f:        FrozenStateSetOf(3, 1, 2),
			other:    FrozenStateSetOf(1, 2, 3),
			expected: true,
		},
		{
			name: "mutable set with same members",
			f:    FrozenStateSetOf(4, 64),
			other: func() Hashable {
				s := NewStateSet()
				s.Add(64)
				s.Add(4)
				return s
			}(),
			expected: true,
		},
		{
			name:     "different bitset lengths",
			f:        NewFrozenStateSet(bitset.New(1024).Set(1)),
			other:    NewFrozenStateSet(bitset.New(2).Set(1)),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.f.Equals(tt.other))
		})
	}
}
