package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	automaton "github.com/geange/grammar-automaton"
)

func writeDOT(w io.Writer, a *automaton.Automaton) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", strconv.Quote(a.Name()))
	fmt.Fprintln(bw, "\trankdir=LR;")
	fmt.Fprintln(bw, "\tnode [shape=circle];")

	initial, hasInitial := a.Initial()
	if hasInitial {
		fmt.Fprintln(bw, "\t__start [shape=point];")
	}
	for _, state := range a.States() {
		shape := "circle"
		if a.IsFinal(state) {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "\t%s [shape=%s];\n", strconv.Quote(state), shape)
	}
	if hasInitial {
		fmt.Fprintf(bw, "\t__start -> %s;\n", strconv.Quote(initial))
	}
	for _, t := range a.Transitions() {
		fmt.Fprintf(bw, "\t%s -> %s [label=%s];\n",
			strconv.Quote(t.Origin), strconv.Quote(t.Dest), strconv.Quote(t.Symbol))
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// writeMermaid renders a stateDiagram-v2. State names are aliased to s0..sN since composite names are not
// valid Mermaid identifiers in general.
func writeMermaid(w io.Writer, a *automaton.Automaton) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "stateDiagram-v2")
	fmt.Fprintln(bw, "    direction LR")

	states := a.States()
	alias := make(map[string]string, len(states))
	for i, state := range states {
		alias[state] = "s" + strconv.Itoa(i)
		fmt.Fprintf(bw, "    state %s as %s\n", strconv.Quote(state), alias[state])
	}
	if initial, ok := a.Initial(); ok {
		fmt.Fprintf(bw, "    [*] --> %s\n", alias[initial])
	}
	for _, t := range a.Transitions() {
		fmt.Fprintf(bw, "    %s --> %s: %s\n", alias[t.Origin], alias[t.Dest], t.Symbol)
	}
	for _, state := range a.Finals() {
		fmt.Fprintf(bw, "    %s --> [*]\n", alias[state])
	}
	return bw.Flush()
}
