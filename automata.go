package automaton

import "strconv"

// Automata builds small deterministic automata by hand.
type Automata struct {
}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language: one non-final initial state.
func (*Automata) MakeEmpty() *Automaton {
	a := NewAutomaton("empty")
	a.SetInitial("q0")
	return a
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString() *Automaton {
	a := NewAutomaton("empty string")
	a.SetInitial("q0")
	a.MarkFinal("q0")
	return a
}

// MakeSymbols
// Returns a new (deterministic) automaton that accepts exactly the given symbol sequence. States are named
// q0..qN.
func (*Automata) MakeSymbols(symbols ...string) *Automaton {
	a := NewAutomaton("symbols")
	a.SetInitial("q0")
	for i, symbol := range symbols {
		a.AddTransition(stateName(i), symbol, stateName(i+1))
	}
	a.MarkFinal(stateName(len(symbols)))
	return a
}

func stateName(i int) string {
	return "q" + strconv.Itoa(i)
}
