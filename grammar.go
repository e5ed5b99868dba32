package automaton

import (
	"regexp"
	"strings"
)

// Epsilon is the right-hand side that marks its head as final.
const Epsilon = "ε"

// DefaultFinalState is the auxiliary accepting state reached by terminal-only alternatives.
const DefaultFinalState = "Z_FIM"

// Rule is one production line of a right-regular grammar: a head non-terminal and its alternatives, in
// source order. Both are raw text; Compile trims them and strips angle brackets from the head.
type Rule struct {
	Head         string
	Alternatives []string
}

// A terminal followed by an optional <Nonterminal>. Anchored at the start only: trailing text after the
// closing bracket is ignored.
var alternativePattern = regexp.MustCompile(`^([^<]+)(?:<(.+)>)?`)

type compileOptions struct {
	finalState string
	onSkip     func(head, alternative string)
}

// CompileOption configures Compile.
type CompileOption func(*compileOptions)

// WithFinalState names the auxiliary accepting state. It should differ from every non-terminal.
func WithFinalState(name string) CompileOption {
	return func(o *compileOptions) {
		if name != "" {
			o.finalState = name
		}
	}
}

// OnSkip registers a callback for alternatives that match neither the epsilon form nor the
// terminal<Nonterminal> form. Such alternatives never fail compilation.
func OnSkip(fn func(head, alternative string)) CompileOption {
	return func(o *compileOptions) {
		o.onSkip = fn
	}
}

// Compile builds the NFA of a right-regular grammar. The head of the first rule is the initial state.
//
//	<A> ::= a<B>   A -a-> B
//	<A> ::= b      A -b-> Z_FIM, Z_FIM final
//	<A> ::= ε      A final
//
// The same head may appear in several rules; its alternatives accumulate. Returns ErrInvalidGrammar if
// rules is empty.
func Compile(rules []Rule, opts ...CompileOption) (*Automaton, error) {
	if len(rules) == 0 {
		return nil, ErrInvalidGrammar
	}

	o := &compileOptions{finalState: DefaultFinalState}
	for _, opt := range opts {
		opt(o)
	}

	nfa := NewAutomaton("NFA")
	for i, rule := range rules {
		head := nonTerminal(rule.Head)
		if i == 0 {
			nfa.SetInitial(head)
		}

		for _, alt := range rule.Alternatives {
			alt = strings.TrimSpace(alt)
			if alt == Epsilon || alt == "" {
				nfa.MarkFinal(head)
				continue
			}

			m := alternativePattern.FindStringSubmatchIndex(alt)
			if m == nil {
				if o.onSkip != nil {
					o.onSkip(head, alt)
				}
				continue
			}

			symbol := strings.TrimSpace(alt[m[2]:m[3]])
			if m[4] >= 0 {
				nfa.AddTransition(head, symbol, strings.TrimSpace(alt[m[4]:m[5]]))
			} else {
				nfa.AddTransition(head, symbol, o.finalState)
				nfa.MarkFinal(o.finalState)
			}
		}
	}

	return nfa, nil
}

func nonTerminal(raw string) string {
	return strings.TrimSpace(strings.NewReplacer("<", "", ">", "").Replace(raw))
}
