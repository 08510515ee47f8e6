package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsopt/internal/diagfmt"
	"jsopt/internal/driver"
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags] path",
	Short: "Show arena occupancy for a file or directory",
	Long:  `Stats tokenizes a JavaScript file, or every .js/.mjs/.cjs file under a directory in parallel, and reports node arena occupancy per file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	path := args[0]

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return runStatsDir(cmd, path, maxDiagnostics)
	}
	return runStatsFile(cmd, path, maxDiagnostics)
}

func runStatsFile(cmd *cobra.Command, path string, maxDiagnostics int) error {
	result, err := driver.Tokenize(path, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	defer result.Close()

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr), ShowNotes: true}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}
	diagfmt.FormatStats(os.Stdout, result.File.Path, driver.CollectStats(result.Arena))
	return nil
}

func runStatsDir(cmd *cobra.Command, dir string, maxDiagnostics int) error {
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	fileSet, results, err := driver.TokenizeDir(cmd.Context(), dir, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("directory scan failed: %w", err)
	}
	defer driver.CloseAll(results)

	opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr), ShowNotes: true}
	failed := 0
	for _, res := range results {
		if res.Bag.Len() > 0 {
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, opts)
		}
		if res.Arena == nil {
			failed++
			continue
		}
		file := fileSet.Get(res.FileID)
		diagfmt.FormatStats(os.Stdout, file.DisplayPath(fileSet.BaseDir()), driver.CollectStats(res.Arena))
	}

	fmt.Fprintf(os.Stdout, "%d files scanned", len(results)-failed)
	if failed > 0 {
		fmt.Fprintf(os.Stdout, ", %d failed to load", failed)
	}
	fmt.Fprintln(os.Stdout)
	return nil
}
