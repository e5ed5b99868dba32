package automaton

import "sort"

// Minimize Returns the minimal DFA equivalent to dfa, computed by Moore partition refinement: states start
// split into finals and non-finals and blocks are split by destination-block signature until a fixpoint.
// Each block becomes one state named by the canonical composite name of its members; it is initial if it
// holds the initial state of dfa and final if it holds any final state.
//
// dfa must be deterministic. This is not checked: on a non-deterministic input the smallest destination of
// each transition is sampled and the result is unspecified.
func Minimize(dfa *Automaton) *Automaton {
	minimal := NewAutomaton("Minimal DFA")
	alphabet := dfa.Alphabet()
	for _, symbol := range alphabet {
		minimal.addSymbol(symbol)
	}
	if dfa.NumStates() == 0 {
		return minimal
	}

	p := initialPartition(dfa)
	for {
		next := p.refine(dfa, alphabet)
		if next.equals(p) {
			break
		}
		p = next
	}

	blockNames := make([]string, len(p.blocks))
	for i, block := range p.blocks {
		name := dfa.setName(block)
		blockNames[i] = name
		minimal.createState(name)

		if dfa.hasInitial && block.Contains(dfa.initial) {
			minimal.SetInitial(name)
		}
		if block.Intersects(dfa.finalSet()) {
			minimal.MarkFinal(name)
		}
	}

	// Any member represents its block: at the fixpoint all members agree on destination blocks.
	for i, block := range p.blocks {
		rep := dfa.representative(block)
		for _, symbol := range dfa.symbolsOf(rep) {
			d, ok := dfa.step(rep, symbol).NextSet(0)
			if !ok {
				continue
			}
			minimal.AddTransition(blockNames[i], symbol, blockNames[p.blockOf[d]])
		}
	}

	return minimal
}

// representative returns the member of block with the lexicographically smallest identifier.
func (a *Automaton) representative(block IndexSet) int {
	members := block.Members()
	rep := members[0]
	for _, s := range members[1:] {
		if a.ids[s] < a.ids[rep] {
			rep = s
		}
	}
	return rep
}

// symbolsOf returns the symbols with transitions leaving state index origin, sorted.
func (a *Automaton) symbolsOf(origin int) []string {
	symbols := make([]string, 0, len(a.transitions[origin]))
	for s := range a.transitions[origin] {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}
