package automaton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	// b | a+
	aPlusOrB = []Rule{
		{Head: "S", Alternatives: []string{"a<A>", "b"}},
		{Head: "A", Alternatives: []string{"a<A>", "ε"}},
	}

	// a(b|c), reached through two non-terminals
	forkGrammar = []Rule{
		{Head: "S", Alternatives: []string{"a<A>", "a<B>"}},
		{Head: "A", Alternatives: []string{"b"}},
		{Head: "B", Alternatives: []string{"c"}},
	}

	// (a|b)c, with A and B equivalent
	twinGrammar = []Rule{
		{Head: "S", Alternatives: []string{"a<A>", "b<B>"}},
		{Head: "A", Alternatives: []string{"c"}},
		{Head: "B", Alternatives: []string{"c"}},
	}
)

func mustCompile(t *testing.T, rules []Rule) *Automaton {
	t.Helper()
	nfa, err := Compile(rules)
	require.NoError(t, err)
	return nfa
}

func mustDeterminize(t *testing.T, rules []Rule) *Automaton {
	t.Helper()
	dfa, err := Determinize(mustCompile(t, rules))
	require.NoError(t, err)
	return dfa
}

// wordsUpTo enumerates every symbol sequence over alphabet of length at most n, shortest first.
func wordsUpTo(alphabet []string, n int) [][]string {
	out := [][]string{{}}
	layer := [][]string{{}}
	for i := 0; i < n; i++ {
		var next [][]string
		for _, w := range layer {
			for _, s := range alphabet {
				word := append(append([]string(nil), w...), s)
				next = append(next, word)
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}
