package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jsopt/internal/config"
	"jsopt/internal/diagfmt"
	"jsopt/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.js",
	Short: "Tokenize a JavaScript source file",
	Long:  `Tokenize scans a JavaScript file into the node arena and dumps the token records. Pass "-" to read from stdin.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Int("max-text", 40, "truncate echoed token text to this many columns (0 = no limit)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = cfg.Output.Format
	}
	if !config.ValidFormat(format) {
		return fmt.Errorf("unknown format: %s", format)
	}

	maxText, err := cmd.Flags().GetInt("max-text")
	if err != nil {
		return fmt.Errorf("failed to get max-text flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := tokenizeArg(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	defer result.Close()

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		opts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	switch format {
	case "pretty":
		opts := diagfmt.PrettyOpts{MaxTextWidth: maxText}
		return diagfmt.FormatTokensPretty(os.Stdout, result.Arena, result.File, opts)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Arena, result.File)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(os.Stdout, result.Arena, result.File)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func tokenizeArg(path string, maxDiagnostics int) (*driver.TokenizeResult, error) {
	if path != "-" {
		return driver.Tokenize(path, maxDiagnostics)
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return driver.TokenizeBytes("<stdin>", content, maxDiagnostics)
}
