// Package report renders automata for people and tools.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	automaton "github.com/geange/grammar-automaton"
)

// Format names an output representation.
type Format string

const (
	CSV     Format = "csv"
	Table   Format = "table"
	DOT     Format = "dot"
	Mermaid Format = "mermaid"
	YAML    Format = "yaml"
)

// ErrUnknownFormat is returned for a format name that is not one of Formats.
var ErrUnknownFormat = errors.New("unknown report format")

// Formats lists the supported formats; the first is the default.
func Formats() []Format {
	return []Format{CSV, Table, DOT, Mermaid, YAML}
}

// ParseFormat accepts a format name case-insensitively. The empty string is CSV.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CSV, nil
	}
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension is the file extension, without dot, used for reports in this format.
func (f Format) Extension() string {
	switch f {
	case Table:
		return "txt"
	case Mermaid:
		return "mmd"
	}
	return string(f)
}

// ContentType is the MIME type served for this format.
func (f Format) ContentType() string {
	switch f {
	case CSV:
		return "text/csv; charset=utf-8"
	case DOT:
		return "text/vnd.graphviz; charset=utf-8"
	case YAML:
		return "application/yaml"
	}
	return "text/plain; charset=utf-8"
}

// Write renders a to w in format f.
func Write(w io.Writer, a *automaton.Automaton, f Format) error {
	switch f {
	case CSV:
		return writeCSV(w, a)
	case Table:
		return writeTable(w, a)
	case DOT:
		return writeDOT(w, a)
	case Mermaid:
		return writeMermaid(w, a)
	case YAML:
		return writeYAML(w, a)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// row is one line of the transition listing shared by the CSV and table formats.
type row struct {
	State       string
	Symbol      string
	Destination string
	Initial     bool
	Final       bool
}

var header = []string{"State", "Symbol", "Destination", "Initial", "Final"}

func (r row) strings() []string {
	return []string{r.State, r.Symbol, r.Destination, flag(r.Initial), flag(r.Final)}
}

func flag(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

// rows lists, per state in order, one row per symbol with its destinations joined by " | ". A final state
// without transitions gets a single "-" row; other states without transitions are omitted.
func rows(a *automaton.Automaton) []row {
	initial, hasInitial := a.Initial()

	var out []row
	for _, state := range a.States() {
		isInitial := hasInitial && state == initial
		isFinal := a.IsFinal(state)

		symbols := a.Symbols(state)
		if len(symbols) == 0 {
			if isFinal {
				out = append(out, row{State: state, Symbol: "-", Destination: "-", Initial: isInitial, Final: true})
			}
			continue
		}
		for _, symbol := range symbols {
			out = append(out, row{
				State:       state,
				Symbol:      symbol,
				Destination: strings.Join(a.Destinations(state, symbol), " | "),
				Initial:     isInitial,
				Final:       isFinal,
			})
		}
	}
	return out
}
