package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"safefloat/internal/driver"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [directory]",
	Short: "Check literal arguments of safefloat calls in Go sources",
	Long: `Scan walks *.go files under the directory (default ".") and validates
every constant string passed to MustFloat32, MustFloat64, Float32 and Float64
of the safefloat package, and to Parse and Valid when their precision argument
is one of the package's *Precision constants. Parsed call sites are cached by
file content`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	scanCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	scanCmd.Flags().Bool("no-cache", false, "do not read or write the scan cache")
	scanCmd.Flags().Bool("clear-cache", false, "drop cached scan results before scanning")
	scanCmd.Flags().String("import-path", driver.DefaultImportPath, "import path of the safefloat package")
	scanCmd.Flags().String("progress", "off", "show live progress on stderr (auto|on|off)")
}

func runScan(cmd *cobra.Command, args []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	format, err := readFormat(cmd)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	importPath, err := cmd.Flags().GetString("import-path")
	if err != nil {
		return fmt.Errorf("failed to get import-path flag: %w", err)
	}
	progressStr, err := cmd.Flags().GetString("progress")
	if err != nil {
		return fmt.Errorf("failed to get progress flag: %w", err)
	}
	progressMode, err := readUIMode("progress", progressStr)
	if err != nil {
		return err
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	opts := driver.Options{
		MaxDiagnostics: g.maxDiagnostics,
		Jobs:           jobs,
		Timer:          g.timer(),
		ImportPath:     importPath,
	}
	if !noCache {
		cache, cacheErr := driver.OpenDiskCache("safefloat")
		if cacheErr != nil {
			log.Warn().Err(cacheErr).Msg("scan cache disabled")
		} else {
			if clearCache {
				if err := cache.DropAll(); err != nil {
					return fmt.Errorf("failed to clear cache: %w", err)
				}
			}
			opts.Cache = cache
		}
	}

	var res *driver.Result
	if !g.quiet && shouldUse(progressMode, os.Stderr) {
		files, listErr := driver.ListGoFiles(dir)
		if listErr != nil {
			return listErr
		}
		res, err = runScanWithUI(cmd.Context(), "scanning "+filepath.Base(dir), dir, files, opts)
	} else {
		res, err = driver.ScanDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return err
	}
	return finish(cmd, res, format, g)
}
