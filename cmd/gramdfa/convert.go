package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	automaton "github.com/geange/grammar-automaton"
	"github.com/geange/grammar-automaton/internal/grammarfile"
	"github.com/geange/grammar-automaton/internal/metrics"
	"github.com/geange/grammar-automaton/internal/report"
)

var convertCmd = &cobra.Command{
	Use:   "convert [grammar-file]",
	Short: "Convert a grammar into a minimal DFA report",
	Long: `Reads a right-regular grammar and writes the automaton of the selected stage.
Without a file argument on a terminal, asks for the file name.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st := newStatus(cmd.ErrOrStderr())
		opts, err := convertOptionsFromFlags(cmd, args)
		if err == nil {
			err = runConvert(opts, cmd.OutOrStdout(), st)
		}
		if err != nil {
			st.fail("%v", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("output", "o", "", `Report file ("-" for stdout, default output_<grammar>.<ext>)`)
	convertCmd.Flags().StringP("format", "f", "", "Report format: csv, table, dot, mermaid or yaml")
	convertCmd.Flags().String("stage", string(automaton.StageMinimal), "Automaton to report: nfa, dfa or min")
	convertCmd.Flags().String("metrics-file", "", "Write Prometheus metrics of the run to this file")
}

type convertOptions struct {
	Input       string
	Output      string
	Format      report.Format
	Stage       automaton.Stage
	FinalState  string
	MetricsFile string
}

func convertOptionsFromFlags(cmd *cobra.Command, args []string) (convertOptions, error) {
	input, err := grammarPath(args)
	if err != nil {
		return convertOptions{}, err
	}

	formatName, _ := cmd.Flags().GetString("format")
	if formatName == "" {
		formatName = settings.Format
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return convertOptions{}, err
	}

	stageName, _ := cmd.Flags().GetString("stage")
	stage, err := automaton.ParseStage(stageName)
	if err != nil {
		return convertOptions{}, err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = defaultOutputPath(settings.OutputDir, input, format)
	}
	metricsFile, _ := cmd.Flags().GetString("metrics-file")

	return convertOptions{
		Input:       input,
		Output:      output,
		Format:      format,
		Stage:       stage,
		FinalState:  settings.FinalState,
		MetricsFile: metricsFile,
	}, nil
}

// grammarPath returns the file argument, or asks for one when stdin is a terminal.
func grammarPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("missing grammar file argument")
	}

	prompt := promptui.Prompt{
		Label: "Grammar file",
		Validate: func(s string) error {
			info, err := os.Stat(strings.TrimSpace(s))
			if err != nil {
				return errors.New("file not found")
			}
			if info.IsDir() {
				return errors.New("is a directory")
			}
			return nil
		},
	}
	path, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(path), nil
}

// defaultOutputPath names the report after the grammar file: output_<stem>.<ext> in dir.
func defaultOutputPath(dir, input string, format report.Format) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, "output_"+stem+"."+format.Extension())
}

func runConvert(opts convertOptions, stdout io.Writer, st *status) (err error) {
	var m *metrics.Metrics
	pipelineOpts := []automaton.Option{
		automaton.WithLogger(logger),
		automaton.WithAuxiliaryState(opts.FinalState),
	}
	if opts.MetricsFile != "" {
		m = metrics.New()
		pipelineOpts = append(pipelineOpts, automaton.WithHooks(m.Hooks()))
		defer func() {
			m.ObserveConversion(err)
			if werr := m.WriteTextfile(opts.MetricsFile); werr != nil && err == nil {
				err = fmt.Errorf("write metrics: %w", werr)
			}
		}()
	}

	rules, err := grammarfile.ReadFile(opts.Input)
	if err != nil {
		return err
	}
	res, err := automaton.NewPipeline(pipelineOpts...).Convert(rules)
	if err != nil {
		return err
	}
	st.ok("Grammar read. NFA with %d states.", res.NFA.NumStates())
	st.ok("Converted to DFA (%d states).", res.DFA.NumStates())
	st.ok("DFA minimized (%d states).", res.Minimal.NumStates())

	a := res.Stage(opts.Stage)
	if opts.Output == "-" {
		return report.Write(stdout, a, opts.Format)
	}

	if err := writeReportFile(opts.Output, a, opts.Format); err != nil {
		return err
	}
	logger.Info("report written", "path", opts.Output, "format", string(opts.Format), "stage", string(opts.Stage))
	st.ok("Report saved to %s", opts.Output)
	return nil
}

func writeReportFile(path string, a *automaton.Automaton, format report.Format) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return report.Write(f, a, format)
}
