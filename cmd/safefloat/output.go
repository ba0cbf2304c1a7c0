package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"safefloat/internal/diag"
	"safefloat/internal/diagfmt"
	"safefloat/internal/driver"
	"safefloat/internal/observ"
)

type outputFormat string

const (
	formatPretty outputFormat = "pretty"
	formatJSON   outputFormat = "json"
	formatShort  outputFormat = "short"
)

func readFormat(cmd *cobra.Command) (outputFormat, error) {
	raw, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	switch f := outputFormat(strings.ToLower(raw)); f {
	case formatPretty, formatJSON, formatShort:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format: %s (must be pretty, json or short)", raw)
	}
}

// globalOptions are the persistent flags every command reads.
type globalOptions struct {
	quiet          bool
	timings        bool
	maxDiagnostics int
}

func readGlobals(cmd *cobra.Command) (globalOptions, error) {
	var g globalOptions
	var err error
	flags := cmd.Root().PersistentFlags()
	if g.quiet, err = flags.GetBool("quiet"); err != nil {
		return g, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if g.timings, err = flags.GetBool("timings"); err != nil {
		return g, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if g.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return g, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return g, nil
}

func (g globalOptions) timer() *observ.Timer {
	if g.timings {
		return observ.NewTimer()
	}
	return nil
}

func renderDiagnostics(out io.Writer, res *driver.Result, format outputFormat, colorOn bool) error {
	res.Bag.Sort()
	switch format {
	case formatJSON:
		return diagfmt.JSON(out, res.Bag, res.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeNotes:     true,
			IncludeFixes:     true,
		})
	case formatShort:
		if s := diag.FormatShortDiagnostics(res.Bag.Items(), res.FileSet, false); s != "" {
			_, err := fmt.Fprintln(out, s)
			return err
		}
		return nil
	default:
		diagfmt.Pretty(out, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:       colorOn,
			PathMode:    diagfmt.PathModeAuto,
			ShowNotes:   true,
			ShowFixes:   true,
			ShowPreview: true,
		})
		return nil
	}
}

var (
	summaryOK   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	summaryFail = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// printSummary печатает итоговую строку вида "3 literals: 2 ok, 1 rejected".
func printSummary(out io.Writer, res *driver.Result) {
	total := len(res.Literals)
	accepted := res.Accepted()
	line := fmt.Sprintf("%d %s: %d ok, %d rejected", total, plural(total, "literal"), accepted, total-accepted)
	if n := res.Bag.Count(diag.SevWarning); n > 0 {
		line += fmt.Sprintf(", %d %s", n, plural(n, "warning"))
	}
	style := summaryOK
	if res.Failed() {
		style = summaryFail
	}
	fmt.Fprintln(out, style.Render(line))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func printTimings(out io.Writer, t *observ.Timer) {
	if t == nil {
		return
	}
	fmt.Fprint(out, t.Summary())
}

// finish renders res and returns errDiagnostics when it holds errors.
func finish(cmd *cobra.Command, res *driver.Result, format outputFormat, g globalOptions) error {
	if err := renderDiagnostics(cmd.OutOrStdout(), res, format, colorEnabled()); err != nil {
		return err
	}
	if format == formatPretty && !g.quiet {
		if res.Bag.Len() > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		printSummary(cmd.OutOrStdout(), res)
	}
	if g.timings {
		printTimings(cmd.ErrOrStderr(), res.Timer)
	}
	if res.Failed() {
		return errDiagnostics
	}
	return nil
}

func colorEnabled() bool {
	return !color.NoColor
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
