package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"decint/internal/bignum"
	"decint/internal/calc"
	"decint/internal/config"
)

// loadConfig resolves the manifest for a command: an explicit --config
// path wins, otherwise decint.toml in the working directory.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		path = config.FileName
	}
	return config.Load(path)
}

// colorEnabled resolves the effective color mode: flag over manifest,
// auto meaning "stdout is a terminal".
func colorEnabled(cmd *cobra.Command, cfg config.Config) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	if mode == "" {
		mode = cfg.Output.Color
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

// newEvaluator builds an expression evaluator honoring the manifest
// limits.
func newEvaluator(cfg config.Config) (*calc.Evaluator, error) {
	maxDigits, err := cfg.MaxRandomDigitsInt()
	if err != nil {
		return nil, err
	}
	return &calc.Evaluator{
		Rand:            rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		MaxRandomDigits: maxDigits,
	}, nil
}

// renderResult formats a value for the terminal, optionally grouping
// digits in threes.
func renderResult(v bignum.Int, group bool) string {
	s := v.String()
	if !group {
		return s
	}
	return groupDigits(s)
}

// groupDigits inserts thousands separators into a canonical decimal
// string.
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	if len(digits) <= 3 {
		return s
	}

	groups := make([]string, 0, len(digits)/3+1)
	head := len(digits) % 3
	if head > 0 {
		groups = append(groups, digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		groups = append(groups, digits[i:i+3])
	}
	out := strings.Join(groups, ",")
	if neg {
		return "-" + out
	}
	return out
}

// printResult writes one result line, colorized when enabled.
func printResult(enabled bool, s string) {
	if enabled {
		color.New(color.FgGreen).Println(s)
		return
	}
	fmt.Println(s)
}
