package automaton

// Determinize Converts nfa into an equivalent DFA by subset construction. Only subsets reachable from
// {initial} become states, each named by the canonical composite name of its members; the empty subset is
// never materialized, so the result may lack transitions for some (state, symbol) pairs. The result has
// the same alphabet as nfa. Worst case complexity: exponential in the number of NFA states.
//
// Subsets are deduplicated by content and processed once per name: if two distinct subsets share a
// composite name, the first one processed supplies the transitions and the name is final if either subset
// is.
func Determinize(nfa *Automaton) (*Automaton, error) {
	if !nfa.hasInitial {
		return nil, ErrNoInitialState
	}

	dfa := NewAutomaton("DFA")
	alphabet := nfa.Alphabet()
	for _, symbol := range alphabet {
		dfa.addSymbol(symbol)
	}

	initialSet := FrozenStateSetOf(nfa.initial)
	initialName := nfa.setName(initialSet)
	dfa.SetInitial(initialName)
	if initialSet.Intersects(nfa.finalSet()) {
		dfa.MarkFinal(initialName)
	}

	newState := NewHashMap[string](WithCapacity(16))
	newState.Set(initialSet, initialName)

	worklist := []*FrozenStateSet{initialSet}
	processed := make(map[string]struct{})

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		currentName, _ := newState.Get(current)
		if _, done := processed[currentName]; done {
			continue
		}
		processed[currentName] = struct{}{}

		for _, symbol := range alphabet {
			next := NewStateSet()
			for _, s := range current.Members() {
				next.Union(nfa.step(s, symbol))
			}
			if next.Size() == 0 {
				continue
			}

			nextName, seen := newState.Get(next)
			if !seen {
				frozen := next.Freeze()
				nextName = nfa.setName(frozen)
				newState.Set(frozen, nextName)
				worklist = append(worklist, frozen)

				if frozen.Intersects(nfa.finalSet()) {
					dfa.MarkFinal(nextName)
				}
			}

			dfa.AddTransition(currentName, symbol, nextName)
		}
	}

	return dfa, nil
}
