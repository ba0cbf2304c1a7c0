package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"safefloat/internal/driver"
	"safefloat/internal/manifest"
)

var genCmd = &cobra.Command{
	Use:   "gen [flags] [manifest]",
	Short: "Generate Go constants from a safefloat.toml manifest",
	Long: `Gen validates every [[const]] literal of the manifest and, when all of
them are powers of 0.5, writes a Go file declaring them as typed constants.
Without an argument the manifest is looked up from the current directory
upwards`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGen,
}

func init() {
	genCmd.Flags().Bool("dry-run", false, "print the generated file instead of writing it")
	genCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json|short)")
}

func runGen(cmd *cobra.Command, args []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	format, err := readFormat(cmd)
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}

	path, err := manifestPath(args)
	if err != nil {
		return err
	}

	res, err := driver.Generate(cmd.Context(), path, driver.Options{
		MaxDiagnostics: g.maxDiagnostics,
		Timer:          g.timer(),
		DryRun:         dryRun,
	})
	if err != nil {
		return err
	}
	if dryRun && res.Output != nil {
		if _, err := cmd.OutOrStdout().Write(res.Output); err != nil {
			return err
		}
	}
	if res.Written && !g.quiet && format == formatPretty {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", displayPath(res.OutputPath))
	}
	if dryRun && format == formatPretty && !res.Failed() {
		// summary would be mixed into the generated source
		g.quiet = true
	}
	return finish(cmd, res.Result, format, g)
}

func manifestPath(args []string) (string, error) {
	if len(args) == 1 {
		info, err := os.Stat(args[0])
		if err != nil {
			return "", err
		}
		if info.IsDir() {
			return filepath.Join(args[0], manifest.FileName), nil
		}
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	path, ok, err := manifest.Find(wd)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("no %s found in %s or any parent directory", manifest.FileName, wd)
	}
	return path, nil
}

func displayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(wd, path); err == nil && !filepath.IsAbs(rel) && len(rel) < len(path) {
		return rel
	}
	return path
}
