package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// status prints tagged progress lines, coloured when w is a terminal.
type status struct {
	w   io.Writer
	out *termenv.Output
}

func newStatus(w io.Writer) *status {
	return &status{w: w, out: termenv.NewOutput(w)}
}

func (s *status) tag(label, color string) string {
	return s.out.String(label).Foreground(s.out.Color(color)).String()
}

func (s *status) ok(format string, args ...any) {
	fmt.Fprintf(s.w, "%s %s\n", s.tag("[OK]", "2"), fmt.Sprintf(format, args...))
}

func (s *status) fail(format string, args ...any) {
	fmt.Fprintf(s.w, "%s %s\n", s.tag("[ERROR]", "1"), fmt.Sprintf(format, args...))
}

func (s *status) verdict(accepted bool, word string) {
	if accepted {
		fmt.Fprintf(s.w, "%s %q\n", s.tag("accept", "2"), word)
		return
	}
	fmt.Fprintf(s.w, "%s %q\n", s.tag("reject", "1"), word)
}
