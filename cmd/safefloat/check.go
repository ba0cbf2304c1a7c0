package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"safefloat/internal/driver"
	"safefloat/internal/exact"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <literal>...",
	Short: "Check that literals are positive powers of 0.5",
	Long: `Check parses every argument as a decimal or hex floating point literal,
rounds it to the requested precision and reports whether the result is
exactly 2^-k for some k >= 1`,
	Example: `  safefloat check 0.5 0x1p-20
  safefloat check --precision sf 1.1754943508222875e-38`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("precision", "sd", "target precision (sf|sd|sld or float32|float64|extended)")
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	format, err := readFormat(cmd)
	if err != nil {
		return err
	}
	precStr, err := cmd.Flags().GetString("precision")
	if err != nil {
		return fmt.Errorf("failed to get precision flag: %w", err)
	}
	prec, err := exact.ParsePrecision(precStr)
	if err != nil {
		return err
	}

	res, err := driver.Check(cmd.Context(), args, driver.Options{
		Precision:      prec,
		MaxDiagnostics: g.maxDiagnostics,
		Timer:          g.timer(),
	})
	if err != nil {
		return err
	}
	return finish(cmd, res, format, g)
}
