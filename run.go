package automaton

import "strings"

// Run Returns true if a accepts the given symbol sequence. Every destination is followed, so a need not be
// deterministic.
func Run(a *Automaton, symbols ...string) bool {
	if !a.hasInitial {
		return false
	}
	current := NewStateSet()
	current.Add(a.initial)

	for _, symbol := range symbols {
		next := NewStateSet()
		for _, s := range current.Members() {
			next.Union(a.step(s, symbol))
		}
		if next.Size() == 0 {
			return false
		}
		current = next
	}
	return current.Intersects(a.finalSet())
}

// Accepts Returns true if word can be split into a sequence of alphabet symbols that a accepts. Symbols may
// span several characters, so every split is considered. The empty word is accepted iff the initial state
// is final.
func Accepts(a *Automaton, word string) bool {
	if !a.hasInitial {
		return false
	}
	alphabet := a.Alphabet()

	// reached[i] holds the states reachable after consuming word[:i].
	reached := make([]*StateSet, len(word)+1)
	reached[0] = NewStateSet()
	reached[0].Add(a.initial)

	for i := 0; i < len(word); i++ {
		if reached[i] == nil || reached[i].Size() == 0 {
			continue
		}
		rest := word[i:]
		for _, symbol := range alphabet {
			if symbol == "" || !strings.HasPrefix(rest, symbol) {
				continue
			}
			j := i + len(symbol)
			if reached[j] == nil {
				reached[j] = NewStateSet()
			}
			for _, s := range reached[i].Members() {
				reached[j].Union(a.step(s, symbol))
			}
		}
	}

	last := reached[len(word)]
	return last != nil && last.Intersects(a.finalSet())
}
