package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"safefloat/internal/logging"
	"safefloat/internal/prof"
	"safefloat/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "safefloat",
	Short: "Validate power-of-one-half floating point literals",
	Long: `safefloat checks that decimal and hex floating point literals denote
exactly a positive power of 0.5, generates Go constants from a manifest and
scans Go sources for literal arguments of safefloat calls`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupGlobals,
}

var profSession *prof.Session

// main registers subcommands and global flags and executes the root command.
// Any returned error exits with status 1; profiles are flushed first.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show (0 = unlimited)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (trace|debug|info|warn|error|disabled)")
	rootCmd.PersistentFlags().String("cpuprofile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("memprofile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("exec-trace", "", "write a runtime execution trace to file")

	err := rootCmd.Execute()
	if stopErr := profSession.Stop(); stopErr != nil {
		fmt.Fprintf(os.Stderr, "failed to write profiles: %v\n", stopErr)
	}
	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func setupGlobals(cmd *cobra.Command, _ []string) error {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	mode, err := readUIMode("color", colorFlag)
	if err != nil {
		return err
	}
	useColor := shouldUse(mode, os.Stdout)
	color.NoColor = !useColor

	level, err := cmd.Root().PersistentFlags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	if err := checkLogLevel(level); err != nil {
		return err
	}
	cfg := logging.DefaultConfig()
	cfg.NoColor = !shouldUse(mode, os.Stderr)
	logging.Init("safefloat", cfg, level)

	var pc prof.Config
	flags := cmd.Root().PersistentFlags()
	if pc.CPU, err = flags.GetString("cpuprofile"); err != nil {
		return fmt.Errorf("failed to get cpuprofile flag: %w", err)
	}
	if pc.Mem, err = flags.GetString("memprofile"); err != nil {
		return fmt.Errorf("failed to get memprofile flag: %w", err)
	}
	if pc.Trace, err = flags.GetString("exec-trace"); err != nil {
		return fmt.Errorf("failed to get exec-trace flag: %w", err)
	}
	if pc.Enabled() {
		if profSession, err = prof.Start(pc); err != nil {
			return fmt.Errorf("failed to start profiling: %w", err)
		}
	}
	return nil
}

func checkLogLevel(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if _, ok := logging.ParseLevel(raw); !ok {
		return fmt.Errorf("invalid --log-level value %q (expected trace|debug|info|warn|error|disabled)", raw)
	}
	return nil
}

// errDiagnostics is returned once error diagnostics have been printed.
var errDiagnostics = errors.New("error diagnostics reported")

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
