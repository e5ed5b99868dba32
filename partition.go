package automaton

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// partition is a set of disjoint, non-empty blocks covering the states of one automaton.
type partition struct {
	blocks []*FrozenStateSet

	// blockOf[state] is the position of the block holding state.
	blockOf []int
}

func newPartition(numStates int, blocks []*FrozenStateSet) *partition {
	p := &partition{
		blocks:  blocks,
		blockOf: make([]int, numStates),
	}
	for i, block := range blocks {
		for _, s := range block.Members() {
			p.blockOf[s] = i
		}
	}
	return p
}

// initialPartition splits the states of a into finals and non-finals, dropping an empty side.
func initialPartition(a *Automaton) *partition {
	n := uint(a.NumStates())
	finals := bitset.New(n)
	nonFinals := bitset.New(n)
	for i := uint(0); i < n; i++ {
		if a.finalSet().Test(i) {
			finals.Set(i)
		} else {
			nonFinals.Set(i)
		}
	}

	var blocks []*FrozenStateSet
	for _, b := range []*bitset.BitSet{finals, nonFinals} {
		if b.Any() {
			blocks = append(blocks, NewFrozenStateSet(b))
		}
	}
	return newPartition(int(n), blocks)
}

// signature encodes, for each symbol in order, the block of the state's destination or "-" when it has
// none. Only the smallest destination is sampled; on a DFA there is at most one.
func (p *partition) signature(a *Automaton, state int, alphabet []string) string {
	var sb strings.Builder
	for i, symbol := range alphabet {
		if i > 0 {
			sb.WriteByte(',')
		}
		dests := a.step(state, symbol)
		if dests == nil {
			sb.WriteByte('-')
			continue
		}
		d, ok := dests.NextSet(0)
		if !ok {
			sb.WriteByte('-')
			continue
		}
		sb.WriteString(strconv.Itoa(p.blockOf[d]))
	}
	return sb.String()
}

// refine splits every block by signature against the current partition. All signatures are computed
// before any block changes.
func (p *partition) refine(a *Automaton, alphabet []string) *partition {
	n := uint(a.NumStates())
	var next []*FrozenStateSet

	for _, block := range p.blocks {
		if block.Size() <= 1 {
			next = append(next, block)
			continue
		}

		groups := make(map[string]*bitset.BitSet)
		var order []string
		for _, s := range block.Members() {
			key := p.signature(a, s, alphabet)
			g, ok := groups[key]
			if !ok {
				g = bitset.New(n)
				groups[key] = g
				order = append(order, key)
			}
			g.Set(uint(s))
		}
		for _, key := range order {
			next = append(next, NewFrozenStateSet(groups[key]))
		}
	}

	return newPartition(int(n), next)
}

// equals compares the two partitions as sets of blocks.
func (p *partition) equals(q *partition) bool {
	if len(p.blocks) != len(q.blocks) {
		return false
	}
	blocks := NewHashMap[struct{}](WithCapacity(len(q.blocks)))
	for _, block := range q.blocks {
		blocks.Set(block, struct{}{})
	}
	for _, block := range p.blocks {
		if !blocks.Contains(block) {
			return false
		}
	}
	return true
}
