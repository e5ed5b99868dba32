package automaton

import "errors"

// ErrInvalidGrammar is returned by Compile when no production rule was supplied.
var ErrInvalidGrammar = errors.New("empty or invalid grammar: no '::=' rule found")

// ErrNoInitialState is returned when an operation needs an initial state and none was set.
var ErrNoInitialState = errors.New("automaton has no initial state")

// ErrNotDeterministic is returned by NewRunAutomaton for automata with a multi-destination transition.
var ErrNotDeterministic = errors.New("automaton is not deterministic")
