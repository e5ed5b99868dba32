package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/geange/grammar-automaton/internal/config"
	"github.com/geange/grammar-automaton/internal/logging"
)

// Shared by every command; replaced in loadSettings before any command runs.
var (
	settings = config.Default()
	logger   = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gramdfa",
	Short: "gramdfa turns right-regular grammars into minimal DFAs",
	Long: `gramdfa reads a right-regular grammar (<S> ::= a<A> | b), builds its NFA,
determinizes it by subset construction and minimizes the result by partition refinement.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Settings file (default "+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every pipeline stage")
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	settings = cfg

	level := logging.ParseLevel(cfg.LogLevel)
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	logger = logging.New(level)
	return nil
}
