package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterminize(t *testing.T) {
	dfa := mustDeterminize(t, aPlusOrB)

	initial, ok := dfa.Initial()
	require.True(t, ok)
	assert.Equal(t, "S", initial)
	assert.Equal(t, "DFA", dfa.Name())
	assert.True(t, dfa.IsDeterministic())
	assert.Equal(t, []string{"A", "S", "Z_FIM"}, dfa.States())
	assert.Equal(t, []string{"A", "Z_FIM"}, dfa.Finals())
	assert.Equal(t, []Transition{
		{Origin: "A", Symbol: "a", Dest: "A"},
		{Origin: "S", Symbol: "a", Dest: "A"},
		{Origin: "S", Symbol: "b", Dest: "Z_FIM"},
	}, dfa.Transitions())
}

func TestDeterminize_CompositeStates(t *testing.T) {
	dfa := mustDeterminize(t, forkGrammar)

	assert.True(t, dfa.IsDeterministic())
	assert.Equal(t, []string{"AB", "S", "Z_FIM"}, dfa.States())
	assert.Equal(t, []string{"Z_FIM"}, dfa.Finals())
	assert.Equal(t, []Transition{
		{Origin: "AB", Symbol: "b", Dest: "Z_FIM"},
		{Origin: "AB", Symbol: "c", Dest: "Z_FIM"},
		{Origin: "S", Symbol: "a", Dest: "AB"},
	}, dfa.Transitions())
}

func TestDeterminize_InitialFinal(t *testing.T) {
	dfa := mustDeterminize(t, []Rule{{Head: "S", Alternatives: []string{"ε"}}})

	assert.Equal(t, []string{"S"}, dfa.States())
	assert.Equal(t, []string{"S"}, dfa.Finals())
	assert.Equal(t, 0, dfa.NumTransitions())
}

func TestDeterminize_DropsUnreachable(t *testing.T) {
	dfa := mustDeterminize(t, []Rule{
		{Head: "S", Alternatives: []string{"a"}},
		{Head: "U", Alternatives: []string{"b<S>"}},
	})

	assert.Equal(t, []string{"S", "Z_FIM"}, dfa.States())
	assert.Equal(t, []string{"a", "b"}, dfa.Alphabet(), "alphabet is kept whole")
	assert.Empty(t, dfa.Symbols("Z_FIM"))
}

func TestDeterminize_EveryStateReachable(t *testing.T) {
	for _, rules := range [][]Rule{aPlusOrB, forkGrammar, twinGrammar} {
		dfa := mustDeterminize(t, rules)
		initial, _ := dfa.Initial()

		seen := map[string]bool{initial: true}
		queue := []string{initial}
		for len(queue) > 0 {
			s := queue[0]
			queue = queue[1:]
			for _, symbol := range dfa.Symbols(s) {
				for _, d := range dfa.Destinations(s, symbol) {
					if !seen[d] {
						seen[d] = true
						queue = append(queue, d)
					}
				}
			}
		}
		assert.Len(t, seen, dfa.NumStates())
	}
}

func TestDeterminize_NameCollision(t *testing.T) {
	// {A, BC} and {AB, C} are distinct subsets that share the name "ABC".
	nfa := NewAutomaton("collide")
	nfa.SetInitial("X")
	nfa.AddTransition("X", "a", "A")
	nfa.AddTransition("X", "a", "BC")
	nfa.AddTransition("X", "b", "AB")
	nfa.AddTransition("X", "b", "C")
	nfa.AddTransition("A", "c", "X")
	nfa.AddTransition("AB", "d", "X")
	nfa.MarkFinal("C")

	dfa, err := Determinize(nfa)
	require.NoError(t, err)

	assert.Equal(t, []string{"ABC", "X"}, dfa.States())
	assert.Equal(t, []string{"ABC"}, dfa.Finals())
	assert.Equal(t, []Transition{
		{Origin: "ABC", Symbol: "c", Dest: "X"},
		{Origin: "X", Symbol: "a", Dest: "ABC"},
		{Origin: "X", Symbol: "b", Dest: "ABC"},
	}, dfa.Transitions())
}

func TestDeterminize_NoInitialState(t *testing.T) {
	nfa := NewAutomaton("no initial")
	nfa.AddTransition("A", "a", "B")

	_, err := Determinize(nfa)
	assert.ErrorIs(t, err, ErrNoInitialState)
}

func TestDeterminize_PreservesLanguage(t *testing.T) {
	for _, rules := range [][]Rule{aPlusOrB, forkGrammar, twinGrammar} {
		nfa := mustCompile(t, rules)
		dfa, err := Determinize(nfa)
		require.NoError(t, err)

		for _, word := range wordsUpTo(nfa.Alphabet(), 4) {
			assert.Equal(t, Run(nfa, word...), Run(dfa, word...), "word %v", word)
		}
	}
}
