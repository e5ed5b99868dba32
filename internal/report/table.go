package report

import (
	"io"

	"github.com/olekukonko/tablewriter"

	automaton "github.com/geange/grammar-automaton"
)

func writeTable(w io.Writer, a *automaton.Automaton) error {
	table := tablewriter.NewWriter(w)
	table.Header(header)
	for _, r := range rows(a) {
		if err := table.Append(r.strings()); err != nil {
			return err
		}
	}
	return table.Render()
}
