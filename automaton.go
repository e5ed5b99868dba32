package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Automaton Represents a finite automaton over string state identifiers and string symbols. States are
// created implicitly by AddTransition, SetInitial and MarkFinal; there is no removal. The transition relation
// maps (origin, symbol) to a set of destinations, so an Automaton is non-deterministic by default; it is a DFA
// when every (origin, symbol) pair has at most one destination.
//
// State identifiers are interned to dense indices in creation order. The final set and every destination set
// are bitsets over those indices, which keeps the subset construction and the partition refinement cheap.
type Automaton struct {
	name string

	// Interned state identifiers; ids[i] is the identifier of index i.
	ids   []string
	index map[string]int

	alphabet map[string]struct{}

	initial    int
	hasInitial bool

	isAccept *bitset.BitSet

	// origin index -> symbol -> destination indices
	transitions map[int]map[string]*bitset.BitSet

	// True if no (origin, symbol) pair has more than one destination.
	deterministic bool
}

// Transition is one (origin, symbol, destination) triple of the transition relation.
type Transition struct {
	Origin string
	Symbol string
	Dest   string
}

func (t Transition) String() string {
	return fmt.Sprintf("%s -%s-> %s", t.Origin, t.Symbol, t.Dest)
}

// NewAutomaton returns an empty automaton with the given descriptive name.
func NewAutomaton(name string) *Automaton {
	return &Automaton{
		name:          name,
		index:         make(map[string]int),
		alphabet:      make(map[string]struct{}),
		isAccept:      bitset.New(8),
		transitions:   make(map[int]map[string]*bitset.BitSet),
		deterministic: true,
	}
}

// Name returns the descriptive name given at construction.
func (a *Automaton) Name() string {
	return a.name
}

// createState registers the identifier if needed and returns its index.
func (a *Automaton) createState(id string) int {
	if i, ok := a.index[id]; ok {
		return i
	}
	i := len(a.ids)
	a.ids = append(a.ids, id)
	a.index[id] = i
	return i
}

func (a *Automaton) addSymbol(symbol string) {
	a.alphabet[symbol] = struct{}{}
}

// AddTransition Add destination to the set reached from origin on symbol. Both states and the symbol are
// registered.
func (a *Automaton) AddTransition(origin, symbol, destination string) {
	from := a.createState(origin)
	to := a.createState(destination)
	a.addSymbol(symbol)

	bySymbol, ok := a.transitions[from]
	if !ok {
		bySymbol = make(map[string]*bitset.BitSet)
		a.transitions[from] = bySymbol
	}
	dests, ok := bySymbol[symbol]
	if !ok {
		dests = bitset.New(uint(len(a.ids)))
		bySymbol[symbol] = dests
	}
	dests.Set(uint(to))

	if dests.Count() > 1 {
		a.deterministic = false
	}
}

// SetInitial Record state as the initial state, registering it.
func (a *Automaton) SetInitial(state string) {
	a.initial = a.createState(state)
	a.hasInitial = true
}

// MarkFinal Add state to the final states, registering it.
func (a *Automaton) MarkFinal(state string) {
	a.isAccept.Set(uint(a.createState(state)))
}

// Initial returns the initial state and whether one has been set.
func (a *Automaton) Initial() (string, bool) {
	if !a.hasInitial {
		return "", false
	}
	return a.ids[a.initial], true
}

// HasState reports whether state is registered.
func (a *Automaton) HasState(state string) bool {
	_, ok := a.index[state]
	return ok
}

// IsFinal Returns true if this state is a final state.
func (a *Automaton) IsFinal(state string) bool {
	i, ok := a.index[state]
	return ok && a.isAccept.Test(uint(i))
}

// NumStates How many states this automaton has.
func (a *Automaton) NumStates() int {
	return len(a.ids)
}

// States returns all state identifiers, sorted.
func (a *Automaton) States() []string {
	states := make([]string, len(a.ids))
	copy(states, a.ids)
	sort.Strings(states)
	return states
}

// Alphabet returns the input symbols, sorted.
func (a *Automaton) Alphabet() []string {
	symbols := make([]string, 0, len(a.alphabet))
	for s := range a.alphabet {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// Finals returns the final states, sorted.
func (a *Automaton) Finals() []string {
	return a.names(a.isAccept)
}

// Symbols returns the symbols on which origin has at least one transition, sorted.
func (a *Automaton) Symbols(origin string) []string {
	i, ok := a.index[origin]
	if !ok {
		return nil
	}
	return a.symbolsOf(i)
}

// Destinations returns the states reached from origin on symbol, sorted.
func (a *Automaton) Destinations(origin, symbol string) []string {
	i, ok := a.index[origin]
	if !ok {
		return nil
	}
	dests, ok := a.transitions[i][symbol]
	if !ok {
		return nil
	}
	return a.names(dests)
}

// Transitions returns every (origin, symbol, destination) triple, sorted by origin, symbol and destination.
func (a *Automaton) Transitions() []Transition {
	var out []Transition
	for _, origin := range a.States() {
		for _, symbol := range a.Symbols(origin) {
			for _, dest := range a.Destinations(origin, symbol) {
				out = append(out, Transition{Origin: origin, Symbol: symbol, Dest: dest})
			}
		}
	}
	return out
}

// NumTransitions How many (origin, symbol, destination) triples this automaton has.
func (a *Automaton) NumTransitions() int {
	n := 0
	for _, bySymbol := range a.transitions {
		for _, dests := range bySymbol {
			n += int(dests.Count())
		}
	}
	return n
}

// IsDeterministic Returns true if every (origin, symbol) pair has at most one destination.
func (a *Automaton) IsDeterministic() bool {
	return a.deterministic
}

func (a *Automaton) String() string {
	var sb strings.Builder
	initial, _ := a.Initial()
	fmt.Fprintf(&sb, "[%s] %d states, initial: %s, finals: {%s}\n",
		a.name, a.NumStates(), initial, strings.Join(a.Finals(), ", "))
	for _, t := range a.Transitions() {
		sb.WriteString("  ")
		sb.WriteString(t.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// names resolves a set of indices to sorted identifiers.
func (a *Automaton) names(set *bitset.BitSet) []string {
	out := make([]string, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, a.ids[i])
	}
	sort.Strings(out)
	return out
}

// step returns the destination set of index origin on symbol, or nil.
func (a *Automaton) step(origin int, symbol string) *bitset.BitSet {
	return a.transitions[origin][symbol]
}

// finalSet returns the bitset of final state indices. Callers must not modify it.
func (a *Automaton) finalSet() *bitset.BitSet {
	return a.isAccept
}
