package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"decint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "decint",
	Short: "Arbitrary-precision decimal integer calculator",
	Long:  `decint evaluates arbitrary-precision integer expressions and exposes the underlying number-theory helpers`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(factorialCmd)
	rootCmd.AddCommand(primeCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off); overrides the manifest")
	rootCmd.PersistentFlags().String("config", "", "path to decint.toml (default: working directory)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
