package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	automaton "github.com/geange/grammar-automaton"
	"github.com/geange/grammar-automaton/internal/grammarfile"
)

var checkCmd = &cobra.Command{
	Use:   "check <grammar-file> <word>...",
	Short: "Test words against the language of a grammar",
	Long: `Builds the minimal DFA of the grammar and reports, for every word, whether it is accepted.
Words are split into alphabet symbols automatically; with --symbols each word is read as
space separated symbols instead.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		st := newStatus(cmd.OutOrStdout())
		symbols, _ := cmd.Flags().GetBool("symbols")
		if _, err := runCheck(args[0], args[1:], symbols, st); err != nil {
			newStatus(cmd.ErrOrStderr()).fail("%v", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("symbols", false, "Treat each word as space separated symbols")
}

// runCheck prints one verdict per word and returns how many were accepted.
func runCheck(path string, words []string, symbols bool, st *status) (int, error) {
	rules, err := grammarfile.ReadFile(path)
	if err != nil {
		return 0, err
	}
	res, err := automaton.NewPipeline(
		automaton.WithLogger(logger),
		automaton.WithAuxiliaryState(settings.FinalState),
	).Convert(rules)
	if err != nil {
		return 0, err
	}
	run, err := automaton.NewRunAutomaton(res.Minimal)
	if err != nil {
		return 0, err
	}

	accepted := 0
	for _, word := range words {
		var ok bool
		if symbols {
			ok = run.Run(strings.Fields(word)...)
		} else {
			ok = run.Accepts(word)
		}
		if ok {
			accepted++
		}
		st.verdict(ok, word)
	}
	return accepted, nil
}

