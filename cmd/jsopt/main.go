package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jsopt/internal/config"
	"jsopt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "jsopt",
	Short: "JavaScript tokenizer on a flat node arena",
	Long:  `jsopt scans JavaScript sources into a flat 16-byte node record arena and reports lexical diagnostics`,
}

// cfg holds jsopt.toml defaults; flags override it.
var cfg = config.Default()

func main() {
	if loaded, ok, err := config.Discover("."); err != nil {
		rootCmd.PrintErrf("jsopt: %v\n", err)
		os.Exit(1)
	} else if ok {
		cfg = loaded
	}

	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", cfg.Output.Color, "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", cfg.Limits.MaxDiagnostics, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Int("jobs", cfg.Limits.Jobs, "parallel workers for directory scans (0 = all cores)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color tri-state against the output stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
