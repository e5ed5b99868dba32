package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomaton_AddTransition(t *testing.T) {
	a := NewAutomaton("test")
	a.AddTransition("S", "a", "A")
	a.AddTransition("S", "a", "B")
	a.AddTransition("A", "bc", "A")

	assert.Equal(t, []string{"A", "B", "S"}, a.States())
	assert.Equal(t, []string{"a", "bc"}, a.Alphabet())
	assert.Equal(t, []string{"A", "B"}, a.Destinations("S", "a"))
	assert.Equal(t, []string{"A"}, a.Destinations("A", "bc"))
	assert.Nil(t, a.Destinations("B", "a"))
	assert.Nil(t, a.Destinations("missing", "a"))
	assert.Equal(t, []string{"a"}, a.Symbols("S"))
	assert.Equal(t, 3, a.NumTransitions())
	assert.False(t, a.IsDeterministic())

	_, ok := a.Initial()
	assert.False(t, ok)
}

func TestAutomaton_AddTransitionIsIdempotent(t *testing.T) {
	a := NewAutomaton("test")
	a.AddTransition("S", "a", "A")
	a.AddTransition("S", "a", "A")

	assert.Equal(t, 1, a.NumTransitions())
	assert.True(t, a.IsDeterministic())
}

func TestAutomaton_InitialAndFinals(t *testing.T) {
	a := NewAutomaton("test")
	a.SetInitial("S")
	a.MarkFinal("F")
	a.MarkFinal("S")

	initial, ok := a.Initial()
	require.True(t, ok)
	assert.Equal(t, "S", initial)
	assert.Equal(t, []string{"F", "S"}, a.States())
	assert.Equal(t, []string{"F", "S"}, a.Finals())
	assert.True(t, a.IsFinal("F"))
	assert.False(t, a.IsFinal("X"))
	assert.True(t, a.HasState("F"))
	assert.Equal(t, 0, a.NumTransitions())
}

func TestAutomaton_StatesAreCaseSensitive(t *testing.T) {
	a := NewAutomaton("test")
	a.AddTransition("a", "x", "A")

	assert.Equal(t, 2, a.NumStates())
	assert.False(t, a.HasState("s"))
}

func TestAutomaton_Transitions(t *testing.T) {
	a := NewAutomaton("test")
	a.AddTransition("S", "b", "Z")
	a.AddTransition("A", "a", "A")
	a.AddTransition("S", "a", "A")

	assert.Equal(t, []Transition{
		{Origin: "A", Symbol: "a", Dest: "A"},
		{Origin: "S", Symbol: "a", Dest: "A"},
		{Origin: "S", Symbol: "b", Dest: "Z"},
	}, a.Transitions())
	assert.Equal(t, "S -a-> A", Transition{Origin: "S", Symbol: "a", Dest: "A"}.String())
}

func TestAutomaton_String(t *testing.T) {
	a := NewAutomaton("demo")
	a.SetInitial("S")
	a.AddTransition("S", "a", "F")
	a.MarkFinal("F")

	assert.Equal(t, "[demo] 2 states, initial: S, finals: {F}\n  S -a-> F\n", a.String())
}
