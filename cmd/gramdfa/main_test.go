package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	automaton "github.com/geange/grammar-automaton"
	"github.com/geange/grammar-automaton/internal/report"
)

const grammar = "<S> ::= a<A> | b\n<A> ::= a<A> | ε\n"

func writeGrammar(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grammar.txt")
	require.NoError(t, os.WriteFile(path, []byte(grammar), 0o644))
	return path
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, "output_grammar.csv", defaultOutputPath(".", "grammar.txt", report.CSV))
	assert.Equal(t, filepath.Join("out", "output_g.mmd"), defaultOutputPath("out", "/tmp/g", report.Mermaid))
	assert.Equal(t, filepath.Join("out", "output_a.b.dot"), defaultOutputPath("out", "dir/a.b.txt", report.DOT))
}

func TestRunConvert_File(t *testing.T) {
	input := writeGrammar(t)
	output := filepath.Join(t.TempDir(), "reports", "out.csv")
	metricsFile := filepath.Join(t.TempDir(), "gramdfa.prom")

	var stdout, stderr bytes.Buffer
	err := runConvert(convertOptions{
		Input:       input,
		Output:      output,
		Format:      report.CSV,
		Stage:       automaton.StageMinimal,
		MetricsFile: metricsFile,
	}, &stdout, newStatus(&stderr))
	require.NoError(t, err)

	assert.Zero(t, stdout.Len())
	assert.Contains(t, stderr.String(), "[OK] Grammar read. NFA with 3 states.")
	assert.Contains(t, stderr.String(), "[OK] DFA minimized (3 states).")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "State,Symbol,Destination,Initial,Final\n"+
		"A,a,A,,yes\n"+
		"S,a,A,yes,\n"+
		"S,b,Z_FIM,yes,\n"+
		"Z_FIM,-,-,,yes\n", string(data))

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `gramdfa_stage_states{stage="nfa"} 3`)
}

func TestRunConvert_Stdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runConvert(convertOptions{
		Input:      writeGrammar(t),
		Output:     "-",
		Format:     report.DOT,
		Stage:      automaton.StageNFA,
		FinalState: "END",
	}, &stdout, newStatus(&stderr))
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), `digraph "NFA"`)
	assert.Contains(t, stdout.String(), `"END" [shape=doublecircle];`)
}

func TestRunConvert_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	st := newStatus(&stderr)

	err := runConvert(convertOptions{Input: filepath.Join(t.TempDir(), "missing.txt"), Output: "-"}, &stdout, st)
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("no rules here\n"), 0o644))
	err = runConvert(convertOptions{Input: empty, Output: "-", Format: report.CSV}, &stdout, st)
	assert.ErrorIs(t, err, automaton.ErrInvalidGrammar)
	assert.Zero(t, stdout.Len())
}

func TestRunCheck(t *testing.T) {
	path := writeGrammar(t)

	var out bytes.Buffer
	accepted, err := runCheck(path, []string{"b", "aaa", "ab"}, false, newStatus(&out))
	require.NoError(t, err)
	assert.Equal(t, 2, accepted)
	assert.Equal(t, "accept \"b\"\naccept \"aaa\"\nreject \"ab\"\n", out.String())

	out.Reset()
	accepted, err = runCheck(path, []string{"a a", "a b"}, true, newStatus(&out))
	require.NoError(t, err)
	assert.Equal(t, 1, accepted)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	assert.Equal(t, "gramdfa version dev\n", out.String())
}
