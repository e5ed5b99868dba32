package automaton

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// RunAutomaton is a table-driven matcher compiled from a deterministic Automaton. It is immutable and safe
// for concurrent use.
type RunAutomaton struct {
	ids      []string
	alphabet []string
	symbols  map[string]int

	// transitions[state*len(alphabet)+symbol] is the destination state, or -1.
	transitions []int
	accept      []bool
	initial     int
}

// NewRunAutomaton compiles a. Returns ErrNotDeterministic if some (state, symbol) pair has several
// destinations and ErrNoInitialState if a has no initial state.
func NewRunAutomaton(a *Automaton) (*RunAutomaton, error) {
	if !a.IsDeterministic() {
		return nil, ErrNotDeterministic
	}
	if !a.hasInitial {
		return nil, ErrNoInitialState
	}

	alphabet := a.Alphabet()
	r := &RunAutomaton{
		ids:         append([]string(nil), a.ids...),
		alphabet:    alphabet,
		symbols:     make(map[string]int, len(alphabet)),
		transitions: make([]int, a.NumStates()*len(alphabet)),
		accept:      make([]bool, a.NumStates()),
		initial:     a.initial,
	}
	for i, symbol := range alphabet {
		r.symbols[symbol] = i
	}

	for s := 0; s < a.NumStates(); s++ {
		r.accept[s] = a.finalSet().Test(uint(s))
		for i, symbol := range alphabet {
			r.transitions[s*len(alphabet)+i] = -1
			if dests := a.step(s, symbol); dests != nil {
				if d, ok := dests.NextSet(0); ok {
					r.transitions[s*len(alphabet)+i] = int(d)
				}
			}
		}
	}
	return r, nil
}

// Initial returns the initial state.
func (r *RunAutomaton) Initial() int {
	return r.initial
}

// StateName returns the identifier of state.
func (r *RunAutomaton) StateName(state int) string {
	return r.ids[state]
}

// IsAccept Returns true if state is final.
func (r *RunAutomaton) IsAccept(state int) bool {
	return state >= 0 && r.accept[state]
}

// Step Returns the destination of state on symbol, or -1 if there is none or the symbol is unknown.
func (r *RunAutomaton) Step(state int, symbol string) int {
	i, ok := r.symbols[symbol]
	if !ok || state < 0 {
		return -1
	}
	return r.transitions[state*len(r.alphabet)+i]
}

// Run Returns true if the symbol sequence is accepted.
func (r *RunAutomaton) Run(symbols ...string) bool {
	p := r.initial
	for _, symbol := range symbols {
		p = r.Step(p, symbol)
		if p == -1 {
			return false
		}
	}
	return r.accept[p]
}

// Accepts Returns true if some split of word into alphabet symbols is accepted.
func (r *RunAutomaton) Accepts(word string) bool {
	n := uint(len(r.ids))
	reached := make([]*bitset.BitSet, len(word)+1)
	reached[0] = bitset.New(n).Set(uint(r.initial))

	for i := 0; i < len(word); i++ {
		if reached[i] == nil {
			continue
		}
		rest := word[i:]
		for si, symbol := range r.alphabet {
			if symbol == "" || !strings.HasPrefix(rest, symbol) {
				continue
			}
			j := i + len(symbol)
			for s, ok := reached[i].NextSet(0); ok; s, ok = reached[i].NextSet(s + 1) {
				d := r.transitions[int(s)*len(r.alphabet)+si]
				if d == -1 {
					continue
				}
				if reached[j] == nil {
					reached[j] = bitset.New(n)
				}
				reached[j].Set(uint(d))
			}
		}
	}

	last := reached[len(word)]
	if last == nil {
		return false
	}
	for s, ok := last.NextSet(0); ok; s, ok = last.NextSet(s + 1) {
		if r.accept[s] {
			return true
		}
	}
	return false
}
