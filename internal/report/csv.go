package report

import (
	"encoding/csv"
	"io"

	automaton "github.com/geange/grammar-automaton"
)

func writeCSV(w io.Writer, a *automaton.Automaton) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows(a) {
		if err := cw.Write(r.strings()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
