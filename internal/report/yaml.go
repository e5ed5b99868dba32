package report

import (
	"io"

	"gopkg.in/yaml.v3"

	automaton "github.com/geange/grammar-automaton"
)

type yamlTransition struct {
	From   string `yaml:"from"`
	Symbol string `yaml:"symbol"`
	To     string `yaml:"to"`
}

type yamlAutomaton struct {
	Name          string           `yaml:"name"`
	Initial       string           `yaml:"initial,omitempty"`
	States        []string         `yaml:"states"`
	Alphabet      []string         `yaml:"alphabet"`
	Finals        []string         `yaml:"finals"`
	Deterministic bool             `yaml:"deterministic"`
	Transitions   []yamlTransition `yaml:"transitions"`
}

func writeYAML(w io.Writer, a *automaton.Automaton) error {
	initial, _ := a.Initial()
	doc := yamlAutomaton{
		Name:          a.Name(),
		Initial:       initial,
		States:        a.States(),
		Alphabet:      a.Alphabet(),
		Finals:        a.Finals(),
		Deterministic: a.IsDeterministic(),
	}
	for _, t := range a.Transitions() {
		doc.Transitions = append(doc.Transitions, yamlTransition{From: t.Origin, Symbol: t.Symbol, To: t.Dest})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
